package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Engine 电脑走子。搜索中的可变状态（节点数等）都在每次调用的 searcher 里，
// 所以同一个 Engine 可以被多个 goroutine 同时使用。
type Engine struct {
	logger zerolog.Logger
}

type Option func(*Engine)

// WithLogger 替换默认的全局 logger
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: log.Logger.With().Str("component", "engine").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
