package application

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/user"
)

// fakeBackend is an in-memory adoption API served by gin.
type fakeBackend struct {
	mu           sync.Mutex
	pets         []pet.Pet
	stories      []pet.Story
	favorites    map[string]bool
	applications []adoption.Application
	listings     []listing.Listing
	threads      []message.Thread
	messages     map[string][]message.Message
	// failures maps "METHOD /route" to the status to answer with.
	failures map[string]int
	hits     map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		pets: []pet.Pet{
			{ID: "1", Name: "Bella", Breed: "黃金獵犬", Location: "台北市", Gender: pet.GenderFemale, IsFeatured: true},
			{ID: "2", Name: "Milo", Breed: "米克斯", Location: "高雄市", Gender: pet.GenderMale},
			{ID: "3", Name: "Luna", Breed: "英短", Location: "台北市", Gender: pet.GenderFemale, PetType: pet.PetTypeCat},
		},
		stories:   []pet.Story{{ID: "s1", Author: "Amy", PetName: "Lucky", Content: "..."}},
		favorites: map[string]bool{"2": true},
		applications: []adoption.Application{{
			ID: "a1", Status: adoption.StatusInterview,
			CreateApplication: adoption.CreateApplication{PetID: "1"},
		}},
		listings: []listing.Listing{
			{ID: "l1", Status: listing.StatusActive, CreateListing: listing.CreateListing{Name: "Coco"}},
			{ID: "l2", Status: listing.StatusAdopted, CreateListing: listing.CreateListing{Name: "Max"}},
		},
		threads: []message.Thread{
			{ID: "t1", Name: "快樂爪收容所", UnreadCount: 2},
			{ID: "t2", Name: "毛孩之家"},
		},
		messages: map[string][]message.Message{
			"t1": {{ID: "m1", ThreadID: "t1", Sender: message.SenderOther, Text: "您好"}},
		},
		failures: map[string]int{},
		hits:     map[string]int{},
	}
}

func (b *fakeBackend) fail(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

func (b *fakeBackend) heal(route string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, route)
}

func (b *fakeBackend) count(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

func (b *fakeBackend) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()
		b.mu.Lock()
		b.hits[route]++
		status, failing := b.failures[route]
		b.mu.Unlock()
		if failing {
			c.AbortWithStatusJSON(status, gin.H{"detail": "後端錯誤"})
			return
		}
		c.Next()
	})

	api.GET("/pets", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := []pet.Pet{}
		for _, p := range b.pets {
			if loc := c.Query("location"); loc != "" && p.Location != loc {
				continue
			}
			if g := c.Query("gender"); g != "" && string(p.Gender) != g {
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
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.stories)
	})
	api.GET("/users/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, user.User{ID: "u1", Name: "王小明", Email: "amy@example.com"})
	})
	api.GET("/users/me/stats", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, user.Stats{
			ApplicationsCount: len(b.applications),
			FavoritesCount:    len(b.favorites),
			VisitsCount:       4,
		})
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
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "已加入收藏"})
	})
	api.DELETE("/favorites/:id", func(c *gin.Context) {
		b.mu.Lock()
		delete(b.favorites, c.Param("id"))
		b.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "已移除收藏"})
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
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "申請已送出", "application_id": id})
	})
	api.GET("/listings", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.listings)
	})
	api.POST("/listings", func(c *gin.Context) {
		var req listing.CreateListing
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		id := uuid.NewString()
		b.mu.Lock()
		b.listings = append(b.listings, listing.Listing{ID: id, Status: listing.StatusActive, CreateListing: req})
		b.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "刊登成功", "listing_id": id})
	})
	api.DELETE("/listings/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listings {
			if l.ID == c.Param("id") {
				b.listings = append(b.listings[:i], b.listings[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "已刪除"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "找不到刊登"})
	})
	api.PATCH("/listings/:id/status", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listings {
			if l.ID == c.Param("id") {
				b.listings[i].Status = listing.ListingStatus(c.Query("status"))
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "已更新"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "找不到刊登"})
	})
	api.GET("/messages/threads", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.threads)
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

// newTestClient serves b and returns a client pointed at it.
func newTestClient(t *testing.T, b *fakeBackend) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	c, err := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api"}, zap.NewNop())
	require.NoError(t, err)
	return c
}
