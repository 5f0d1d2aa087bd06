package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"photo-vault-server/internal/config"
	"photo-vault-server/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// AuthRateLimitMiddleware 认证接口限流。
// Redis 可用时优先用 Redis 计数（多实例共享），否则退回进程内令牌桶。
func AuthRateLimitMiddleware() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get()
		if !cfg.RateLimit.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		rps := cfg.RateLimit.AuthRPS
		if rps <= 0 {
			rps = 1.0
		}

		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			// 窗口 = 突发额度 / 速率，计数超过突发额度即拒绝
			window := time.Duration(float64(cfg.RateLimit.AuthBurst)/rps*float64(time.Second)) + time.Second
			key := service.RedisKey("ratelimit", "auth", ip)
			count, err := redisClient.Incr(ctx, key).Result()
			if err == nil {
				if count == 1 {
					_ = redisClient.Expire(ctx, key, window).Err()
				}
				if count > int64(cfg.RateLimit.AuthBurst) {
					c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "请求过于频繁，请稍后再试"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis 异常时落回内存限流
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(rps), cfg.RateLimit.AuthBurst)
		})

		l := limiter.getLimiter(ip)
		if l.Limit() != rate.Limit(rps) {
			l.SetLimit(rate.Limit(rps))
		}
		if l.Burst() != cfg.RateLimit.AuthBurst {
			l.SetBurst(cfg.RateLimit.AuthBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
