package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter ограничение по фиксированному окну, общее для всех экземпляров сервиса
type RedisLimiter struct {
	client      redis.Scripter
	prefix      string
	window      time.Duration
	maxRequests int
}

// NewRedisLimiter создает лимитер на Redis
func NewRedisLimiter(client redis.Scripter, prefix string, window time.Duration, maxRequests int) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		prefix:      prefix,
		window:      window,
		maxRequests: maxRequests,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	seconds := int(l.window / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	count, err := rateLimitScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, seconds).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit script: %w", err)
	}

	return count <= int64(l.maxRequests), nil
}

// LocalLimiter token bucket на каждый ключ в памяти процесса
type LocalLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalLimiter пропускает maxRequests за window с равномерным пополнением
func NewLocalLimiter(window time.Duration, maxRequests int) *LocalLimiter {
	if maxRequests < 1 {
		maxRequests = 1
	}
	return &LocalLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
		ttl:      window * 10,
		now:      time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	l.evict(now)

	return v.limiter.AllowN(now, 1), nil
}

// Вызывается под мьютексом
func (l *LocalLimiter) evict(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, key)
		}
	}
}

// TrustedProxies адреса обратных прокси, которым разрешено передавать X-Forwarded-For
type TrustedProxies struct {
	nets []*net.IPNet
}

// NewTrustedProxies разбирает список IP и CIDR
func NewTrustedProxies(entries []string) (*TrustedProxies, error) {
	proxies := &TrustedProxies{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			proxies.nets = append(proxies.nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		proxies.nets = append(proxies.nets, ipNet)
	}
	return proxies, nil
}

// Contains сообщает, входит ли адрес в список доверенных прокси
func (p *TrustedProxies) Contains(addr string) bool {
	if p == nil {
		return false
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range p.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// RateLimit ограничивает частоту запросов по IP клиента
// При недоступности лимитера запрос пропускается
func RateLimit(limiter Limiter, window time.Duration, proxies *TrustedProxies, logger Logger) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(window / time.Second))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, proxies)

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Error("%s %s - rate limiter unavailable: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("%s %s - rate limit exceeded for ip=%s", r.Method, r.URL.Path, ip)
				w.Header().Set("Retry-After", retryAfter)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP определяет IP клиента
// Заголовки X-Forwarded-For и X-Real-IP учитываются только от доверенного прокси.
// Цепочка X-Forwarded-For читается справа налево до первого недоверенного адреса.
func ClientIP(r *http.Request, proxies *TrustedProxies) string {
	remote := remoteHost(r.RemoteAddr)
	if !proxies.Contains(remote) {
		return remote
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" || net.ParseIP(hop) == nil {
				break
			}
			if i == 0 || !proxies.Contains(hop) {
				return hop
			}
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(realIP) != nil {
		return realIP
	}

	return remote
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
