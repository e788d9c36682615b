package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	if err != nil {
		t.Fatalf("Register trả về lỗi không mong muốn: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	v, exists := r.Get("counter")
	if !exists {
		t.Fatal("Get phải tìm thấy item vừa đăng ký")
	}
	if v != 42 {
		t.Errorf("Giá trị không đúng: muốn 42, nhận %d", v)
	}

	isNew, err = r.Register("counter", 7)
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("Register ghi đè phải trả về isNew = false")
	}
	v, _ = r.Get("counter")
	if v != 7 {
		t.Errorf("Giá trị sau ghi đè không đúng: muốn 7, nhận %d", v)
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Error("Register với name rỗng phải trả về lỗi")
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	v, err := r.GetOrCreate("item", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả về lỗi: %v", err)
	}
	if v != "created" {
		t.Errorf("Giá trị không đúng: %s", v)
	}

	// Lần thứ hai phải trả về item đã có, không gọi creator nữa
	if _, err := r.GetOrCreate("item", creator); err != nil {
		t.Fatalf("GetOrCreate lần hai trả về lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("Creator phải được gọi đúng 1 lần, thực tế %d lần", calls)
	}
}

func TestRegistryUpdateMissing(t *testing.T) {
	r := NewRegistry[int]()
	err := r.Update("missing", func(v int) (int, error) { return v, nil })
	if err == nil {
		t.Error("Update item không tồn tại phải trả về lỗi")
	}
}

func TestRegistryClearWithCleanup(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)

	cleanupCalled := false
	deleted, err := r.Clear("a", func(v int) error {
		cleanupCalled = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear trả về lỗi: %v", err)
	}
	if !deleted {
		t.Error("Clear phải trả về deleted = true")
	}
	if !cleanupCalled {
		t.Error("Cleanup function phải được gọi")
	}
	if _, exists := r.Get("a"); exists {
		t.Error("Item phải bị xóa khỏi registry")
	}
}

func TestRegistryClearCleanupError(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)

	deleted, err := r.Clear("a", func(v int) error {
		return errors.New("cleanup failed")
	})
	if err == nil {
		t.Error("Clear phải trả về lỗi khi cleanup thất bại")
	}
	if deleted {
		t.Error("Item không được xóa khi cleanup thất bại")
	}
	if _, exists := r.Get("a"); !exists {
		t.Error("Item phải còn trong registry khi cleanup thất bại")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Get("shared")
		}()
	}
	wg.Wait()

	if _, exists := r.Get("shared"); !exists {
		t.Error("Item phải tồn tại sau các thao tác đồng thời")
	}
}
