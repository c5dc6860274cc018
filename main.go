package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"prompt-studio-server/modules/asset"
	"prompt-studio-server/modules/common/config"
	generateimage "prompt-studio-server/modules/generate-image"
	generatevideo "prompt-studio-server/modules/generate-video"
	"prompt-studio-server/modules/library"
	sceneprompt "prompt-studio-server/modules/scene-prompt"
	"prompt-studio-server/modules/scene-prompt/cinematic"
	promptcommon "prompt-studio-server/modules/scene-prompt/common"
	"prompt-studio-server/modules/scene-prompt/stopmotion"
	"prompt-studio-server/modules/worker"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		// 프로덕션에서는 특정 도메인만 허용하도록 수정
		return true
	},
}

// 연결된 클라이언트 정보
type Client struct {
	conn      *websocket.Conn
	sessionId string
	userId    string
	userInfo  map[string]interface{}
	send      chan []byte
}

// 스튜디오 세션 관리 (같은 프롬프트를 함께 편집하는 사용자들)
type Session struct {
	id           string
	clients      map[string]*Client
	mutex        sync.RWMutex
	createdAt    time.Time
	lastActivity time.Time
}

// 세션 매니저
type SessionManager struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
	metrics  *ServerMetrics
}

// 서버 메트릭
type ServerMetrics struct {
	TotalSessions    int       `json:"totalSessions"`
	ActiveSessions   int       `json:"activeSessions"`
	TotalConnections int       `json:"totalConnections"`
	StartTime        time.Time `json:"startTime"`
	mutex            sync.RWMutex
}

var sessionManager = &SessionManager{
	sessions: make(map[string]*Session),
	metrics: &ServerMetrics{
		StartTime: time.Now(),
	},
}

// 세션에서 공유되는 에셋 서비스 (컴파일 시 저장된 에셋 조회용)
var sessionAssetService *asset.Service

// 메시지 타입
type Message struct {
	Type      string                 `json:"type"`
	SessionId string                 `json:"sessionId"`
	UserId    string                 `json:"userId"`
	UserInfo  map[string]interface{} `json:"userInfo,omitempty"`

	// 프롬프트 컴파일 요청/결과
	Mode               string          `json:"mode,omitempty"`   // "cinematic" | "stopmotion"
	Engine             string          `json:"engine,omitempty"` // veo, runway, kling, imagen, midjourney, flux
	Config             json.RawMessage `json:"config,omitempty"`
	HasReferenceImage  bool            `json:"hasReferenceImage,omitempty"`
	NegativeCategories map[string]bool `json:"negativeCategories,omitempty"`
	Prompt             string          `json:"prompt,omitempty"`
	Error              string          `json:"error,omitempty"`

	// 편집 중 커서 공유
	CursorX float64 `json:"cursorX,omitempty"`
	CursorY float64 `json:"cursorY,omitempty"`
	IsHost  bool    `json:"isHost,omitempty"`
}

// 세션 가져오기 또는 생성
func (sm *SessionManager) getOrCreateSession(sessionId string) *Session {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions[sessionId]
	if !exists {
		now := time.Now()
		session = &Session{
			id:           sessionId,
			clients:      make(map[string]*Client),
			createdAt:    now,
			lastActivity: now,
		}
		sm.sessions[sessionId] = session

		// 메트릭 업데이트
		sm.metrics.mutex.Lock()
		sm.metrics.TotalSessions++
		sm.metrics.ActiveSessions++
		sm.metrics.mutex.Unlock()

		log.Printf("✅ Created new studio session: %s (Total: %d, Active: %d)",
			sessionId, sm.metrics.TotalSessions, sm.metrics.ActiveSessions)
	}

	// 활동 시간 업데이트
	session.lastActivity = time.Now()
	return session
}

// 클라이언트를 세션에 추가
func (s *Session) addClient(client *Client) {
	s.mutex.Lock()
	s.clients[client.userId] = client
	s.lastActivity = time.Now()
	clientCount := len(s.clients)
	s.mutex.Unlock()

	// 메트릭 업데이트
	sessionManager.metrics.mutex.Lock()
	sessionManager.metrics.TotalConnections++
	sessionManager.metrics.mutex.Unlock()

	log.Printf("👤 Client %s joined session %s (Clients: %d, Total Connections: %d)",
		client.userId, s.id, clientCount, sessionManager.metrics.TotalConnections)

	// user_joined 메시지를 모든 클라이언트에게 브로드캐스트 (mutex 해제 후)
	joinMessage := Message{
		Type:      "user_joined",
		UserId:    client.userId,
		UserInfo:  client.userInfo,
		SessionId: s.id,
	}
	s.broadcastToAll(joinMessage)
}

// 클라이언트를 세션에서 제거
func (s *Session) removeClient(userId string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if client, exists := s.clients[userId]; exists {
		close(client.send)
		delete(s.clients, userId)
		s.lastActivity = time.Now()

		log.Printf("👋 Client %s left session %s (Remaining: %d)", userId, s.id, len(s.clients))

		// 다른 클라이언트들에게 사용자 퇴장 알림
		userLeftMsg := Message{
			Type:   "user_left",
			UserId: userId,
		}
		s.broadcastToOthers(userId, userLeftMsg)

		// 세션이 비어있으면 정리 스케줄링
		if len(s.clients) == 0 {
			log.Printf("🗑️  Session %s is now empty, will be cleaned up", s.id)
		}
	}
}

// 다른 클라이언트들에게 메시지 브로드캐스트
func (s *Session) broadcastToOthers(senderUserId string, message Message) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for userId, client := range s.clients {
		if userId != senderUserId {
			select {
			case client.send <- messageBytes:
			default:
				close(client.send)
				delete(s.clients, userId)
			}
		}
	}
}

// 모든 클라이언트에게 메시지 브로드캐스트 (자신 포함)
func (s *Session) broadcastToAll(message Message) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for userId, client := range s.clients {
		select {
		case client.send <- messageBytes:
		default:
			close(client.send)
			delete(s.clients, userId)
		}
	}
}

// 빈 세션 정리
func (sm *SessionManager) cleanupEmptySessions() {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	cleaned := 0
	for sessionId, session := range sm.sessions {
		session.mutex.RLock()
		isEmpty := len(session.clients) == 0
		session.mutex.RUnlock()

		if isEmpty {
			delete(sm.sessions, sessionId)
			cleaned++

			// 메트릭 업데이트
			sm.metrics.mutex.Lock()
			sm.metrics.ActiveSessions--
			sm.metrics.mutex.Unlock()

			log.Printf("🧹 Cleaned up empty session: %s", sessionId)
		}
	}

	if cleaned > 0 {
		log.Printf("🗑️  Cleaned up %d empty sessions (Active: %d)", cleaned, sm.metrics.ActiveSessions)
	}
}

// 만료된 세션 정리 (24시간 후)
func (sm *SessionManager) cleanupExpiredSessions() {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := time.Now()
	expiredThreshold := 24 * time.Hour
	inactiveThreshold := 2 * time.Hour

	cleaned := 0
	for sessionId, session := range sm.sessions {
		session.mutex.RLock()
		isExpired := now.Sub(session.createdAt) > expiredThreshold
		isInactive := now.Sub(session.lastActivity) > inactiveThreshold && len(session.clients) == 0
		session.mutex.RUnlock()

		if isExpired || isInactive {
			// 연결된 클라이언트들 정리
			session.mutex.Lock()
			for userId, client := range session.clients {
				close(client.send)
				log.Printf("🔌 Disconnecting client %s from expired session %s", userId, sessionId)
			}
			session.mutex.Unlock()

			delete(sm.sessions, sessionId)
			cleaned++

			// 메트릭 업데이트
			sm.metrics.mutex.Lock()
			sm.metrics.ActiveSessions--
			sm.metrics.mutex.Unlock()

			reason := "expired"
			if isInactive {
				reason = "inactive"
			}
			log.Printf("⏰ Cleaned up %s session: %s (Age: %v, Inactive: %v)",
				reason, sessionId, now.Sub(session.createdAt), now.Sub(session.lastActivity))
		}
	}

	if cleaned > 0 {
		log.Printf("🧼 Cleaned up %d expired/inactive sessions (Active: %d)", cleaned, sm.metrics.ActiveSessions)
	}
}

// 정기적 정리 작업 시작
func (sm *SessionManager) startCleanupRoutine() {
	// 5분마다 빈 세션 정리
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			sm.cleanupEmptySessions()
		}
	}()

	// 30분마다 만료된 세션 정리
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			sm.cleanupExpiredSessions()
		}
	}()

	log.Printf("🔄 Started session cleanup routines (Empty: 5min, Expired: 30min)")
}

// WebSocket 핸들러
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// WebSocket 연결 업그레이드
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	// URL 파라미터에서 세션 ID와 사용자 ID 추출
	sessionId := r.URL.Query().Get("session")
	userId := r.URL.Query().Get("user")

	if sessionId == "" || userId == "" {
		log.Printf("Missing session or user parameter")
		conn.Close()
		return
	}

	// 클라이언트 생성
	client := &Client{
		conn:      conn,
		sessionId: sessionId,
		userId:    userId,
		send:      make(chan []byte, 256),
	}

	log.Printf("🔍 New WebSocket connection - Session: %s, User: %s", sessionId, userId)

	// 세션에 클라이언트 추가
	session := sessionManager.getOrCreateSession(sessionId)
	session.addClient(client)

	// 고루틴으로 읽기/쓰기 처리
	go client.writePump()
	go client.readPump(session)
}

// compilePreview - 편집 중인 장면 설정을 프롬프트로 컴파일해 미리보기 메시지를 만든다.
// 실패해도 세션은 끊지 않고 에러 메시지를 브로드캐스트한다
func compilePreview(message Message) Message {
	var subjects []asset.Subject
	var objects []asset.GObject

	if sessionAssetService != nil {
		if loaded, err := sessionAssetService.ListSubjects(); err == nil {
			subjects = loaded
		}
		if loaded, err := sessionAssetService.ListObjects(); err == nil {
			objects = loaded
		}
	}

	engine := promptcommon.ParseEngine(message.Engine)
	prompt, err := sceneprompt.Compile(message.Mode, engine, message.Config, subjects, objects, message.HasReferenceImage)

	preview := Message{
		Type:      "prompt_preview",
		SessionId: message.SessionId,
		UserId:    message.UserId,
		Mode:      message.Mode,
		Engine:    string(engine),
	}
	if err != nil {
		preview.Error = err.Error()
		return preview
	}

	prompt += promptcommon.ComposeNegativePrompt(promptcommon.DefaultNegativeCategories, message.NegativeCategories)
	preview.Prompt = prompt
	return preview
}

// 클라이언트로부터 메시지 읽기
func (c *Client) readPump(session *Session) {
	defer func() {
		session.removeClient(c.userId)
		c.conn.Close()
	}()

	for {
		var message Message
		err := c.conn.ReadJSON(&message)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		// 메시지 타입에 따른 처리
		switch message.Type {
		case "compile_request":
			// 장면 설정 수정 내용을 컴파일해 전원에게 미리보기 전송
			log.Printf("📝 User %s requested prompt preview (mode: %s, engine: %s)",
				c.userId, message.Mode, message.Engine)
			message.UserId = c.userId
			preview := compilePreview(message)
			session.broadcastToAll(preview)
			continue

		case "config_update":
			// 편집 내용은 다른 사용자에게만 중계
			log.Printf("User %s updated scene config", c.userId)

		case "cursor_move":
			// 커서 움직임은 로깅하지 않음 (성능 최적화)

		case "user_joined":
			log.Printf("User %s joined session %s", c.userId, message.SessionId)
		}

		// 메시지 타입에 따라 브로드캐스트 방식 결정
		switch message.Type {
		case "user_joined", "user_left":
			// 이 메시지들은 모든 사용자에게 전송
			session.broadcastToAll(message)
		default:
			// 나머지는 자신을 제외한 다른 사용자에게만 전송
			session.broadcastToOthers(c.userId, message)
		}
	}
}

// 클라이언트로 메시지 쓰기
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "prompt-studio-server",
	})
}

// 세션 정보 조회 엔드포인트
func getSessionInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionId := vars["sessionId"]

	sessionManager.mutex.RLock()
	session, exists := sessionManager.sessions[sessionId]
	sessionManager.mutex.RUnlock()

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Session not found",
		})
		return
	}

	session.mutex.RLock()
	clientCount := len(session.clients)
	clientIds := make([]string, 0, len(session.clients))
	for userId := range session.clients {
		clientIds = append(clientIds, userId)
	}
	session.mutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sessionId":    sessionId,
		"clientCount":  clientCount,
		"clients":      clientIds,
		"createdAt":    session.createdAt,
		"lastActivity": session.lastActivity,
		"age":          time.Since(session.createdAt).String(),
		"inactive":     time.Since(session.lastActivity).String(),
	})
}

// 서버 메트릭 조회 엔드포인트
func getMetrics(w http.ResponseWriter, r *http.Request) {
	sessionManager.metrics.mutex.RLock()
	startTime := sessionManager.metrics.StartTime
	totalSessions := sessionManager.metrics.TotalSessions
	activeSessions := sessionManager.metrics.ActiveSessions
	totalConnections := sessionManager.metrics.TotalConnections
	sessionManager.metrics.mutex.RUnlock()

	uptime := time.Since(startTime)

	sessionManager.mutex.RLock()
	sessionDetails := make([]map[string]interface{}, 0, len(sessionManager.sessions))
	totalClients := 0

	for sessionId, session := range sessionManager.sessions {
		session.mutex.RLock()
		clientCount := len(session.clients)
		totalClients += clientCount

		sessionDetails = append(sessionDetails, map[string]interface{}{
			"sessionId":    sessionId,
			"clientCount":  clientCount,
			"createdAt":    session.createdAt,
			"lastActivity": session.lastActivity,
			"age":          time.Since(session.createdAt).String(),
			"inactive":     time.Since(session.lastActivity).String(),
		})
		session.mutex.RUnlock()
	}
	sessionManager.mutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"server": map[string]interface{}{
			"uptime":           uptime.String(),
			"startTime":        startTime,
			"totalSessions":    totalSessions,
			"activeSessions":   activeSessions,
			"totalConnections": totalConnections,
			"currentClients":   totalClients,
		},
		"sessions": sessionDetails,
	})
}

// 모든 세션 강제 정리 (관리자용)
func forceCleanupSessions(w http.ResponseWriter, r *http.Request) {
	// 즉시 빈 세션 정리
	sessionManager.cleanupEmptySessions()

	// 즉시 만료된 세션 정리
	sessionManager.cleanupExpiredSessions()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "Cleanup completed",
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 정리 루틴 시작
	sessionManager.startCleanupRoutine()

	// Redis Queue Worker 시작 (백그라운드)
	go worker.StartWorker()

	// 에셋/라이브러리 서비스 초기화
	assetService := asset.NewService()
	sessionAssetService = assetService

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 기본 라우트
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", handleWebSocket)
	r.HandleFunc("/session/{sessionId}", getSessionInfo).Methods("GET")
	r.HandleFunc("/metrics", getMetrics).Methods("GET")
	r.HandleFunc("/admin/cleanup", forceCleanupSessions).Methods("POST")

	// 에셋 CRUD
	if assetHandler := asset.NewHandler(); assetHandler != nil {
		assetHandler.RegisterRoutes(r)
	} else {
		log.Println("⚠️  Asset service unavailable, routes skipped")
	}

	// 프롬프트 컴파일
	cinematicHandler := cinematic.NewHandler(assetService)
	cinematicHandler.RegisterRoutes(r)

	stopmotionHandler := stopmotion.NewHandler(assetService)
	stopmotionHandler.RegisterRoutes(r)

	// 프롬프트 라이브러리
	if libraryHandler := library.NewHandler(); libraryHandler != nil {
		libraryHandler.RegisterRoutes(r)
	} else {
		log.Println("⚠️  Library service unavailable, routes skipped")
	}

	// 이미지 생성
	imageService := generateimage.NewService()
	if imageService != nil {
		imageHandler := generateimage.NewHandler(imageService)
		imageHandler.RegisterRoutes(r)
	} else {
		log.Println("⚠️  Image generation service unavailable, routes skipped")
	}

	// 영상 생성
	videoService := generatevideo.NewService()
	if videoService != nil {
		videoHandler := generatevideo.NewHandler(videoService)
		videoHandler.RegisterRoutes(r)
	} else {
		log.Println("⚠️  Video generation service unavailable, routes skipped")
	}

	// Job 재등록 / 취소
	if enqueueHandler := worker.NewEnqueueHandler(); enqueueHandler != nil {
		enqueueHandler.RegisterRoutes(r)
	}
	if cancelHandler := worker.NewCancelHandler(); cancelHandler != nil {
		cancelHandler.RegisterRoutes(r)
	}

	port := cfg.Port

	log.Printf("🚀 Prompt Studio Server starting on port %s", port)
	log.Printf("📡 Studio session endpoint: ws://localhost:%s/ws", port)
	log.Printf("❤️  Health check: http://localhost:%s/health", port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", port)

	// 서버 시작
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
