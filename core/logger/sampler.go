package logger

import (
	"strconv"
	"strings"
	"sync"
)

// ratioSampler admits roughly numerator out of denominator calls.
type ratioSampler struct {
	mu      sync.Mutex
	num     int
	den     int
	counter int
}

func newRatioSampler(numerator, denominator int) *ratioSampler {
	s := &ratioSampler{}
	s.Set(numerator, denominator)
	return s
}

func (s *ratioSampler) Set(numerator, denominator int) {
	if numerator <= 0 {
		numerator = 1
	}
	if denominator <= 0 {
		denominator = 1
	}
	if numerator > denominator {
		numerator = denominator
	}
	s.mu.Lock()
	s.num = numerator
	s.den = denominator
	s.counter = 0
	s.mu.Unlock()
}

func (s *ratioSampler) Allow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	if s.counter > s.den {
		s.counter = 1
	}
	return s.counter <= s.num
}

// parseRatioSpec parses "1/50"-style sampling specs. Empty or malformed
// specs keep the 1/50 default.
func parseRatioSpec(spec string) (int, int) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 1, 50
	}
	parts := strings.SplitN(spec, "/", 2)
	if len(parts) != 2 {
		return 1, 50
	}
	num, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	den, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || num <= 0 || den <= 0 {
		return 1, 50
	}
	return num, den
}
