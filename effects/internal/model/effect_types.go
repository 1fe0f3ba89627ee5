package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog     EffectEnum = "monads_in_go_effect_enum_log"
	EffectBinding EffectEnum = "monads_in_go_effect_enum_binding"
	EffectConsole EffectEnum = "monads_in_go_effect_enum_console"
)

var (
	ErrNoEffectHandler = errors.New("no effect handler registered for this effect")
	ErrHandlerClosed   = errors.New("effect handler is closed")
)

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

type Partitionable interface {
	PartitionKey() string
}
