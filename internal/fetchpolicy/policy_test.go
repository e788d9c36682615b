package fetchpolicy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock cho phép điều khiển thời gian trong test
type fakeClock struct {
	mu  sync.Mutex
	t   time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{t: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestPolicyCooldownSkip(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))
	p := New[int]("test", WithClock[int](clock.Now))

	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := p.Execute(context.Background(), fetch)
	if err != nil {
		t.Fatalf("Lần tải đầu phải thành công, nhận lỗi: %v", err)
	}
	if v != 1 {
		t.Errorf("Giá trị không đúng: %d", v)
	}

	// Gọi lại trong vòng 5 giây phải nhận tín hiệu cooldown, không gọi fetch
	clock.Advance(2 * time.Second)
	v, err = p.Execute(context.Background(), fetch)
	if !errors.Is(err, ErrCooldown) {
		t.Errorf("Phải nhận ErrCooldown, nhận: %v", err)
	}
	if v != 1 {
		t.Errorf("Phải trả về giá trị cache: muốn 1, nhận %d", v)
	}
	if calls != 1 {
		t.Errorf("Fetch không được gọi trong cooldown, số lần gọi: %d", calls)
	}

	// Hết cooldown thì tải lại bình thường
	clock.Advance(4 * time.Second)
	v, err = p.Execute(context.Background(), fetch)
	if err != nil {
		t.Fatalf("Hết cooldown phải tải được, nhận lỗi: %v", err)
	}
	if v != 2 {
		t.Errorf("Giá trị không đúng sau khi hết cooldown: %d", v)
	}
}

func TestPolicyRetryExhaustion(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))
	p := New[int]("test", WithClock[int](clock.Now))

	fetchErr := errors.New("nguồn dữ liệu lỗi")
	calls := 0
	failing := func(ctx context.Context) (int, error) {
		calls++
		return 0, fetchErr
	}

	// 3 lần thất bại liên tiếp (cách nhau quá cooldown)
	for i := 0; i < 3; i++ {
		_, err := p.Execute(context.Background(), failing)
		if err == nil {
			t.Fatalf("Lần %d phải thất bại", i+1)
		}
		if !errors.Is(err, fetchErr) {
			t.Errorf("Lỗi phải wrap lỗi gốc, nhận: %v", err)
		}
		clock.Advance(6 * time.Second)
	}
	if calls != 3 {
		t.Fatalf("Fetch phải được gọi đúng 3 lần, thực tế %d", calls)
	}

	// Lần thứ 3 đã là ErrExhausted
	// Từ giờ mọi lần gọi đều bị từ chối ngay, fetch không được gọi nữa
	_, err := p.Execute(context.Background(), failing)
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Phải nhận ErrExhausted, nhận: %v", err)
	}
	if calls != 3 {
		t.Errorf("Fetch không được gọi sau khi hết retry budget, số lần gọi: %d", calls)
	}
}

func TestPolicyResetClearsState(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))
	p := New[int]("test", WithClock[int](clock.Now))

	failing := func(ctx context.Context) (int, error) {
		return 0, errors.New("lỗi")
	}
	for i := 0; i < 3; i++ {
		_, _ = p.Execute(context.Background(), failing)
		clock.Advance(6 * time.Second)
	}
	if _, err := p.Execute(context.Background(), failing); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Phải ở trạng thái exhausted trước khi reset")
	}

	// Reset phải idempotent: gọi hai lần cho cùng kết quả
	p.Reset()
	p.Reset()

	if p.Failures() != 0 {
		t.Errorf("Số lần thất bại phải về 0 sau reset, nhận %d", p.Failures())
	}
	if _, ok := p.Last(); ok {
		t.Error("Cache phải bị xóa sau reset")
	}

	// Sau reset tải lại được ngay, không dính cooldown cũ
	v, err := p.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 99, nil
	})
	if err != nil {
		t.Fatalf("Sau reset phải tải được ngay, nhận lỗi: %v", err)
	}
	if v != 99 {
		t.Errorf("Giá trị không đúng: %d", v)
	}
}

func TestPolicySingleInFlight(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))
	p := New[int]("test", WithClock[int](clock.Now))

	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = p.Execute(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started

	// Trong khi lần tải đầu đang chạy, lần gọi thứ hai phải bị từ chối ngay
	_, err := p.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	})
	if !errors.Is(err, ErrInFlight) {
		t.Errorf("Phải nhận ErrInFlight, nhận: %v", err)
	}

	close(release)
}

func TestPolicySuccessResetsFailureCount(t *testing.T) {
	clock := newFakeClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))
	p := New[int]("test", WithClock[int](clock.Now))

	fail := func(ctx context.Context) (int, error) { return 0, errors.New("lỗi") }
	ok := func(ctx context.Context) (int, error) { return 7, nil }

	_, _ = p.Execute(context.Background(), fail)
	clock.Advance(6 * time.Second)
	_, _ = p.Execute(context.Background(), fail)
	clock.Advance(6 * time.Second)

	if _, err := p.Execute(context.Background(), ok); err != nil {
		t.Fatalf("Lần tải thành công trả về lỗi: %v", err)
	}
	if p.Failures() != 0 {
		t.Errorf("Thành công phải reset bộ đếm thất bại, nhận %d", p.Failures())
	}
}
