package logging

import (
	"fmt"
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field helpers

// Frequency records a frequency letter.
func Frequency(f byte) Field {
	return String("frequency", string(rune(f)))
}

// Coord records a grid coordinate as "x,y".
func Coord(x, y int) Field {
	return String("coord", fmt.Sprintf("%d,%d", x, y))
}

func NetworkID(id string) Field {
	return String("network_id", id)
}

func Component(name string) Field {
	return String("component", name)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}
