// Package fetchpolicy cung cấp chính sách tải dữ liệu dùng chung cho các
// nguồn dữ liệu đắt tiền (snapshot báo cáo, ...): cooldown giữa các lần tải,
// giới hạn retry khi thất bại liên tiếp, và chặn tải trùng khi đang có một
// lần tải chạy dở.
package fetchpolicy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Các giá trị mặc định của chính sách
const (
	DefaultCooldown   = 5 * time.Second // Khoảng nghỉ tối thiểu giữa hai lần tải
	DefaultMaxRetries = 3               // Số lần thất bại liên tiếp tối đa trước khi dừng hẳn
)

// Các sentinel errors của chính sách. Caller phân biệt bằng errors.Is.
var (
	// ErrCooldown báo lần gọi này bị bỏ qua vì chưa hết khoảng nghỉ.
	// Đây là tín hiệu skip, không phải lỗi hạ tầng; caller nên dùng giá trị cache.
	ErrCooldown = errors.New("fetch skipped: cooldown window has not elapsed")

	// ErrInFlight báo đang có một lần tải chạy dở, lần gọi này bị từ chối.
	ErrInFlight = errors.New("fetch rejected: another fetch is in flight")

	// ErrExhausted báo nguồn đã thất bại quá số lần cho phép.
	// Trạng thái này là terminal cho đến khi Reset được gọi.
	ErrExhausted = errors.New("fetch rejected: retry budget exhausted")
)

// FetchFunc tải dữ liệu từ nguồn.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Policy điều phối việc tải dữ liệu kiểu T theo cooldown và retry budget.
// Mỗi nguồn dữ liệu dùng một Policy riêng. Thread-safe.
type Policy[T any] struct {
	name       string
	cooldown   time.Duration
	maxRetries int
	now        func() time.Time

	mu          sync.Mutex
	inFlight    bool
	lastAttempt time.Time
	failures    int
	cached      T
	hasCached   bool
}

// Option tùy biến Policy khi khởi tạo.
type Option[T any] func(*Policy[T])

// WithCooldown đặt khoảng nghỉ giữa hai lần tải.
func WithCooldown[T any](d time.Duration) Option[T] {
	return func(p *Policy[T]) { p.cooldown = d }
}

// WithMaxRetries đặt số lần thất bại liên tiếp tối đa.
func WithMaxRetries[T any](n int) Option[T] {
	return func(p *Policy[T]) { p.maxRetries = n }
}

// WithClock thay nguồn thời gian, dùng cho test.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(p *Policy[T]) { p.now = now }
}

// New tạo Policy mới với các giá trị mặc định (cooldown 5s, tối đa 3 retry).
func New[T any](name string, opts ...Option[T]) *Policy[T] {
	p := &Policy[T]{
		name:       name,
		cooldown:   DefaultCooldown,
		maxRetries: DefaultMaxRetries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute chạy fn theo chính sách:
//   - Đang có lần tải chạy dở: trả về ErrInFlight ngay.
//   - Đã thất bại đủ maxRetries lần liên tiếp: trả về ErrExhausted cho đến khi Reset.
//   - Chưa hết cooldown kể từ lần thử trước: trả về ErrCooldown (tín hiệu skip).
//   - Ngược lại chạy fn; thành công thì reset bộ đếm thất bại và cache kết quả.
//
// Khi trả về lỗi, giá trị trả về là cache gần nhất (nếu có) để caller có thể
// tiếp tục phục vụ dữ liệu cũ.
func (p *Policy[T]) Execute(ctx context.Context, fn FetchFunc[T]) (T, error) {
	p.mu.Lock()

	if p.inFlight {
		cached := p.cached
		p.mu.Unlock()
		return cached, ErrInFlight
	}

	if p.failures >= p.maxRetries {
		cached := p.cached
		p.mu.Unlock()
		return cached, fmt.Errorf("%s: %w", p.name, ErrExhausted)
	}

	now := p.now()
	if !p.lastAttempt.IsZero() && now.Sub(p.lastAttempt) < p.cooldown {
		cached := p.cached
		p.mu.Unlock()
		return cached, ErrCooldown
	}

	p.inFlight = true
	p.lastAttempt = now
	p.mu.Unlock()

	value, err := fn(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false

	if err != nil {
		p.failures++
		if p.failures >= p.maxRetries {
			return p.cached, fmt.Errorf("%s: %w: %w", p.name, ErrExhausted, err)
		}
		return p.cached, fmt.Errorf("%s: fetch failed (attempt %d/%d): %w", p.name, p.failures, p.maxRetries, err)
	}

	p.failures = 0
	p.cached = value
	p.hasCached = true
	return value, nil
}

// Last trả về giá trị cache gần nhất và cờ cho biết cache có tồn tại không.
func (p *Policy[T]) Last() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cached, p.hasCached
}

// Failures trả về số lần thất bại liên tiếp hiện tại.
func (p *Policy[T]) Failures() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

// Reset xóa bộ đếm thất bại, cooldown và cache.
// Idempotent: gọi nhiều lần liên tiếp cho cùng kết quả.
// Dùng khi dữ liệu nguồn thay đổi (cache không còn giá trị).
func (p *Policy[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = 0
	p.lastAttempt = time.Time{}
	var zero T
	p.cached = zero
	p.hasCached = false
}
