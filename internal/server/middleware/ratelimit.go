package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter ограничивает число запросов с одного адреса за окно (fixed window)
type RateLimiter struct {
	buckets map[string]*bucket
	logger  *slog.Logger
	now     func() time.Time
	stopC   chan struct{}
	rate    int
	window  time.Duration
	mu      sync.Mutex
	stop    sync.Once
}

type bucket struct {
	windowStart time.Time
	tokens      int
}

// NewRateLimiter создает limiter на rate запросов за window и запускает очистку старых buckets.
// Остановка через Stop.
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		window:  window,
		logger:  logger,
		now:     time.Now,
		stopC:   make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.stopC:
			return
		}
	}
}

// cleanupOldBuckets удаляет buckets, не использованные дольше двух окон
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает очистку; повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.stopC) })
}

// Allow расходует токен ключа; false, если токены окна закончились
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{tokens: rl.rate, windowStart: now}
		rl.buckets[key] = b
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Middleware отвечает 429 при превышении лимита.
// Ключ это IP клиента; за прокси его выставляет chi middleware.RealIP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.Allow(key) {
			rl.logger.WarnContext(r.Context(), "rate limit exceeded",
				slog.String("ip", key),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))

			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeError(w, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP адрес без порта
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
