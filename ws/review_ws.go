package ws

import (
	"net/http"
	"sync"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/entity"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ReviewHub 把审核事件实时推给在线的管理端（仪表盘用）
type ReviewHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.AuditLog
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewReviewHub() *ReviewHub {
	return &ReviewHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.AuditLog, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish 实现 services.EventPublisher；hub 繁忙时丢弃事件而不是阻塞审核流程
func (h *ReviewHub) Publish(log *entity.AuditLog) {
	select {
	case h.broadcast <- log:
	default:
		logger.L().Warn("review event dropped", zap.Uint("targetId", log.TargetID))
	}
}

// Run 常驻 goroutine，处理连接进出与事件广播
func (h *ReviewHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					logger.L().Warn("ws write error", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket WS route: /admin/events（WSAuthMiddleware 已做过 admin 校验）
func (h *ReviewHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn("ws upgrade error", zap.Error(err))
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain 只为感知断开；管理端不会往这条连接上发业务数据
func (h *ReviewHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
