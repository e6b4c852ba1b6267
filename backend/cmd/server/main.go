package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"loop-social/backend/internal/assistant"
	"loop-social/backend/internal/store"
	"loop-social/backend/pkg/config"
	"loop-social/backend/pkg/errors"
	"loop-social/backend/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Loop API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Build the session's social graph
	var graph *store.Store
	if cfg.SeedDemo {
		graph = store.NewWithSeed()
	} else {
		graph = store.New()
	}

	// Registration hand-off: a brand-new registrant's name and handle
	// are read once at session start and replace the demo actor
	if cfg.HasSignup() {
		u := graph.CreateNewUser(cfg.SignupName, cfg.SignupHandle)
		log.Info("Session started with fresh registrant",
			zap.String("user_id", u.ID),
			zap.String("handle", u.Handle),
		)
	}

	asst := assistant.NewAdapter(cfg.AssistantBaseURL, cfg.AssistantAPIKey, cfg.AssistantModel)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(log, graph, asst)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// newRouter wires the store's query/action surface and the assistant
// into JSON endpoints. This layer holds only snapshots returned by the
// store and re-queries after every action.
func newRouter(log *zap.Logger, graph *store.Store, asst *assistant.Adapter) *gin.Engine {
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Current actor
		api.GET("/me", func(c *gin.Context) {
			u, err := graph.CurrentUser()
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signed-in user"})
				return
			}
			c.JSON(http.StatusOK, u)
		})

		api.PUT("/me", func(c *gin.Context) {
			var req store.ProfileUpdate
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			u, err := graph.UpdateProfile(req)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signed-in user"})
				return
			}
			c.JSON(http.StatusOK, u)
		})

		api.POST("/me/highlights", func(c *gin.Context) {
			var req struct {
				Title    string `json:"title" binding:"required"`
				ImageURL string `json:"imageUrl" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			highlights, err := graph.AddHighlight(req.Title, req.ImageURL)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signed-in user"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"highlights": highlights})
		})

		// Users
		api.GET("/users", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"users": graph.AllUsers()})
		})

		api.GET("/users/:id", func(c *gin.Context) {
			u, err := graph.UserByID(c.Param("id"))
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusOK, u)
		})

		api.GET("/users/:id/posts", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"posts": graph.PostsByUser(c.Param("id"))})
		})

		api.GET("/users/:id/reposts", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"posts": graph.RepostsByUser(c.Param("id"))})
		})

		api.GET("/users/:id/stories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"stories": graph.StoriesByUser(c.Param("id"))})
		})

		api.POST("/users/:id/follow", func(c *gin.Context) {
			targetID := c.Param("id")
			if err := graph.ToggleFollow(targetID); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"following": graph.IsFollowing(targetID)})
		})

		// Feeds
		api.GET("/feed", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"posts": graph.Feed()})
		})

		api.GET("/explore", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"posts": graph.ExplorePosts()})
		})

		api.GET("/posts/saved", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"posts": graph.SavedPosts()})
		})

		api.GET("/posts/liked", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"posts": graph.LikedPosts()})
		})

		// Posts
		api.POST("/posts", func(c *gin.Context) {
			var req store.CreatePostInput
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if req.Content == "" && req.ImageURL == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Post needs text or an image"})
				return
			}
			p, err := graph.CreatePost(req)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signed-in user"})
				return
			}
			c.JSON(http.StatusCreated, p)
		})

		api.POST("/posts/:id/like", func(c *gin.Context) {
			p, err := graph.ToggleLike(c.Param("id"))
			if err != nil {
				respondStoreError(c, err)
				return
			}
			c.JSON(http.StatusOK, p)
		})

		api.POST("/posts/:id/save", func(c *gin.Context) {
			p, err := graph.ToggleSave(c.Param("id"))
			if err != nil {
				respondStoreError(c, err)
				return
			}
			c.JSON(http.StatusOK, p)
		})

		api.POST("/posts/:id/repost", func(c *gin.Context) {
			p, err := graph.ToggleRepost(c.Param("id"))
			if err != nil {
				respondStoreError(c, err)
				return
			}
			c.JSON(http.StatusOK, p)
		})

		api.POST("/posts/:id/comments", func(c *gin.Context) {
			var req struct {
				Text string `json:"text" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cm, err := graph.AddComment(c.Param("id"), req.Text)
			if err != nil {
				respondStoreError(c, err)
				return
			}
			c.JSON(http.StatusCreated, cm)
		})

		// Stories
		api.GET("/stories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"stories": graph.AllStories()})
		})

		api.POST("/stories", func(c *gin.Context) {
			var req struct {
				MediaURL  string          `json:"mediaUrl" binding:"required"`
				MediaKind store.MediaKind `json:"mediaType" binding:"required,oneof=image video"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			st, err := graph.CreateStory(req.MediaURL, req.MediaKind)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signed-in user"})
				return
			}
			c.JSON(http.StatusCreated, st)
		})

		api.POST("/stories/:id/viewed", func(c *gin.Context) {
			st, err := graph.MarkStoryViewed(c.Param("id"))
			if err != nil {
				respondStoreError(c, err)
				return
			}
			c.JSON(http.StatusOK, st)
		})

		// Chats
		api.GET("/chats/:userId/messages", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"messages": graph.MessagesForChat(c.Param("userId"))})
		})

		api.POST("/chats/:userId/messages", func(c *gin.Context) {
			var req struct {
				Text string `json:"text" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			m, err := graph.SendMessage(c.Param("userId"), req.Text)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signed-in user"})
				return
			}
			c.JSON(http.StatusCreated, m)
		})

		// Assistant
		api.POST("/assist/improve", func(c *gin.Context) {
			var req struct {
				Draft string `json:"draft" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			improved, err := asst.ImproveDraft(c.Request.Context(), req.Draft)
			if err != nil {
				// Degrade to the original draft rather than failing the composer
				log.Warn("Draft improvement failed, returning original", zap.Error(err))
				c.JSON(http.StatusOK, gin.H{"text": req.Draft, "improved": false})
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": improved, "improved": true})
		})

		api.POST("/assist/places", func(c *gin.Context) {
			var req struct {
				Query string `json:"query" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"places": asst.SearchPlaces(c.Request.Context(), req.Query)})
		})

		// Compose assist runs both helpers concurrently for the composer
		api.POST("/assist/compose", func(c *gin.Context) {
			var req struct {
				Draft         string `json:"draft" binding:"required"`
				LocationQuery string `json:"locationQuery"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			text := req.Draft
			var places []string

			g, ctx := errgroup.WithContext(c.Request.Context())
			g.Go(func() error {
				improved, err := asst.ImproveDraft(ctx, req.Draft)
				if err != nil {
					log.Warn("Draft improvement failed, keeping original", zap.Error(err))
					return nil
				}
				text = improved
				return nil
			})
			if req.LocationQuery != "" {
				g.Go(func() error {
					places = asst.SearchPlaces(ctx, req.LocationQuery)
					return nil
				})
			}
			_ = g.Wait()

			c.JSON(http.StatusOK, gin.H{"text": text, "places": places})
		})
	}

	return router
}

// respondStoreError maps store errors onto HTTP statuses
func respondStoreError(c *gin.Context, err error) {
	if errors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ginLogger logs requests through zap
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Debug("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
