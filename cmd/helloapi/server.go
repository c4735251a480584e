//go:build !tinygo

package main

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"portal/portal/message"

	"github.com/gin-gonic/gin"
	"github.com/mailru/easyjson"
)

// reply is one entry of the click rotation.
type reply struct {
	text  string
	color string
}

var hello = reply{text: "Hello, PyPortal!", color: "#00FF00"}

var defaultClicks = []reply{
	{text: "Clicked!", color: "#FF0000"},
	{text: "Again?", color: "#FFFF00"},
	{text: "Touch %d", color: "#00FFFF"},
	{text: "Still here", color: ""},
}

type server struct {
	router *gin.Engine
	clicks []reply
	count  atomic.Uint64
}

func newServer(clicks []reply) *server {
	s := &server{clicks: clicks}
	s.router = gin.New()
	s.router.Use(gin.Recovery())

	api := s.router.Group("/api")
	{
		api.GET("/hello", s.handleHello)
		api.GET("/click", s.handleClick)
	}
	return s
}

func (s *server) handleHello(c *gin.Context) {
	writePayload(c, message.NewPayload(hello.text, hello.color))
}

// handleClick answers with the next reply in the rotation. A %d in the text
// is replaced by the click count.
func (s *server) handleClick(c *gin.Context) {
	n := s.count.Add(1)
	if len(s.clicks) == 0 {
		writePayload(c, message.NewPayload(fmt.Sprintf("Click %d", n), ""))
		return
	}
	r := s.clicks[(n-1)%uint64(len(s.clicks))]
	text := r.text
	if strings.Contains(text, "%d") {
		text = fmt.Sprintf(text, n)
	}
	writePayload(c, message.NewPayload(text, r.color))
}

func writePayload(c *gin.Context, p message.Payload) {
	b, err := easyjson.Marshal(p)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/json", b)
}
