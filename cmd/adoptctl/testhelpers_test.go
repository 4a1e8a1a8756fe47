package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/config"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/user"
)

// backend is a small in-memory adoption API.
type backend struct {
	mu           sync.Mutex
	pets         []pet.Pet
	favorites    map[string]bool
	applications []adoption.Application
	listings     []listing.Listing
	messages     map[string][]message.Message
}

func newBackend() *backend {
	return &backend{
		pets: []pet.Pet{
			{ID: "1", Name: "Bella", Breed: "黃金獵犬", Age: "2 歲", Location: "台北市", Gender: pet.GenderFemale, IsFeatured: true},
			{ID: "2", Name: "Milo", Breed: "米克斯", Age: "1 歲", Location: "高雄市", Gender: pet.GenderMale},
			{ID: "3", Name: "Luna", Breed: "英短", Age: "3 歲", Location: "台北市", Gender: pet.GenderFemale},
		},
		favorites: map[string]bool{"2": true},
		listings: []listing.Listing{
			{ID: "l1", Status: listing.StatusActive, CreateListing: listing.CreateListing{Name: "Coco"}},
			{ID: "l2", Status: listing.StatusAdopted, CreateListing: listing.CreateListing{Name: "Max"}},
		},
		messages: map[string][]message.Message{
			"t1": {{ID: "m1", ThreadID: "t1", Sender: message.SenderOther, Text: "您好"}},
		},
	}
}

func (b *backend) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")

	api.GET("/pets", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := []pet.Pet{}
		for _, p := range b.pets {
			if loc := c.Query("location"); loc != "" && p.Location != loc {
				continue
			}
			out = append(out, p)
		}
		c.JSON(http.StatusOK, out)
	})
	api.GET("/pets/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, p := range b.pets {
			if p.ID == c.Param("id") {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "找不到寵物"})
	})
	api.GET("/stories", func(c *gin.Context) {
		c.JSON(http.StatusOK, []pet.Story{{ID: "s1", Author: "Amy", PetName: "Lucky", Content: "回家了"}})
	})
	api.GET("/users/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, user.User{ID: "u1", Name: "王小明", Email: "ming@example.com"})
	})
	api.GET("/users/me/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, user.Stats{ApplicationsCount: 1, FavoritesCount: 1, VisitsCount: 3})
	})
	api.GET("/favorites", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := []pet.Pet{}
		for _, p := range b.pets {
			if b.favorites[p.ID] {
				out = append(out, p)
			}
		}
		c.JSON(http.StatusOK, out)
	})
	api.GET("/favorites/ids", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		ids := []string{}
		for id := range b.favorites {
			ids = append(ids, id)
		}
		c.JSON(http.StatusOK, gin.H{"pet_ids": ids})
	})
	api.POST("/favorites", func(c *gin.Context) {
		var body struct {
			PetID string `json:"pet_id"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		b.mu.Lock()
		b.favorites[body.PetID] = true
		b.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	api.DELETE("/favorites/:id", func(c *gin.Context) {
		b.mu.Lock()
		delete(b.favorites, c.Param("id"))
		b.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	api.GET("/applications", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.applications)
	})
	api.POST("/applications", func(c *gin.Context) {
		var req adoption.CreateApplication
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		id := uuid.NewString()
		b.mu.Lock()
		b.applications = append(b.applications, adoption.Application{
			ID: id, Status: adoption.StatusPending, CreateApplication: req,
		})
		b.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"success": true, "application_id": id})
	})
	api.GET("/listings", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.listings)
	})
	api.PATCH("/listings/:id/status", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listings {
			if l.ID == c.Param("id") {
				b.listings[i].Status = listing.ListingStatus(c.Query("status"))
				c.JSON(http.StatusOK, gin.H{"success": true})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "找不到刊登"})
	})
	api.GET("/messages/threads", func(c *gin.Context) {
		c.JSON(http.StatusOK, []message.Thread{{ID: "t1", Name: "快樂爪收容所", UnreadCount: 2}, {ID: "t2", Name: "毛孩之家"}})
	})
	api.GET("/messages/threads/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		msgs := b.messages[c.Param("id")]
		if msgs == nil {
			msgs = []message.Message{}
		}
		c.JSON(http.StatusOK, msgs)
	})
	api.POST("/messages/threads/:id", func(c *gin.Context) {
		var req message.SendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		msg := message.Message{
			ID: uuid.NewString(), ThreadID: c.Param("id"), Sender: message.SenderUser,
			Text: req.Text, ImageURL: req.ImageURL, Timestamp: "剛剛",
		}
		b.mu.Lock()
		b.messages[msg.ThreadID] = append(b.messages[msg.ThreadID], msg)
		b.mu.Unlock()
		c.JSON(http.StatusOK, msg)
	})
	return r
}

// syncBuffer is written by notification listeners on timer goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

type harness struct {
	backend *backend
	cfg     *config.ClientConfig
	url     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	color.NoColor = true

	b := newBackend()
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	return &harness{
		backend: b,
		url:     srv.URL + "/api",
		cfg: &config.ClientConfig{
			AppEnv:            "test",
			APIBaseURL:        srv.URL + "/api",
			RequestTimeout:    5 * time.Second,
			NotificationDelay: 10 * time.Millisecond,
		},
	}
}

// run executes adoptctl with args against the harness backend.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return h.exec(context.Background(), t, args...)
}

func (h *harness) exec(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()
	client, err := apiclient.New(apiclient.Config{BaseURL: h.url, Timeout: h.cfg.RequestTimeout}, zap.NewNop())
	require.NoError(t, err)

	out := &syncBuffer{}
	a := &app{out: out, cfg: h.cfg, logger: zap.NewNop(), client: client}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetErr(out)
	err = root.ExecuteContext(ctx)
	return out.String(), err
}
