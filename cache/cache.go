package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store 带过期时间的键值缓存能力
// 市场目录等组件通过该接口访问缓存，便于注入假实现进行测试；
// 实现必须保证单个键的 Get/Set 原子性
type Store interface {
	// Get 读取缓存值，第二个返回值表示键是否存在且未过期
	Get(key string) (interface{}, bool)
	// Set 写入缓存值并设置过期时间
	Set(key string, value interface{}, ttl time.Duration)
	// Delete 删除缓存值
	Delete(key string)
}

// Memory 进程内缓存实现，基于 patrickmn/go-cache
type Memory struct {
	c *gocache.Cache
}

// NewMemory 创建进程内缓存
func NewMemory() *Memory {
	return &Memory{
		c: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Get 读取缓存值
func (m *Memory) Get(key string) (interface{}, bool) {
	return m.c.Get(key)
}

// Set 写入缓存值并设置过期时间
func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	m.c.Set(key, value, ttl)
}

// Delete 删除缓存值
func (m *Memory) Delete(key string) {
	m.c.Delete(key)
}

var _ Store = (*Memory)(nil)
