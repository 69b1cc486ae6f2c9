package views

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

type slotEntry struct {
	id       uint64
	template string
	data     any
}

// Registry gom các mảnh template theo vùng (slot) của layout, ví dụ sidebar
type Registry struct {
	mu     sync.RWMutex
	tmpl   *template.Template
	slots  map[string][]slotEntry
	nextID uint64
}

func NewRegistry(tmpl *template.Template) *Registry {
	return &Registry{
		tmpl:  tmpl,
		slots: make(map[string][]slotEntry),
	}
}

// Handle dùng để gỡ một mảnh đã đăng ký
type Handle struct {
	registry *Registry
	slot     string
	id       uint64
}

// Unregister gỡ mảnh khỏi slot, gọi nhiều lần vẫn an toàn
func (h Handle) Unregister() {
	if h.registry == nil {
		return
	}
	r := h.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.slots[h.slot]
	for i, e := range entries {
		if e.id == h.id {
			r.slots[h.slot] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Register thêm mảnh templateName với data vào cuối slot
func (r *Registry) Register(slot, templateName string, data any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.slots[slot] = append(r.slots[slot], slotEntry{id: r.nextID, template: templateName, data: data})
	return Handle{registry: r, slot: slot, id: r.nextID}
}

// Render chạy song song các mảnh của slot và nối kết quả bằng "\n" theo
// thứ tự đăng ký. Slot trống trả về chuỗi rỗng.
func (r *Registry) Render(ctx context.Context, slot string) (template.HTML, error) {
	r.mu.RLock()
	entries := append([]slotEntry(nil), r.slots[slot]...)
	r.mu.RUnlock()

	if len(entries) == 0 {
		return "", nil
	}

	outputs := make([]string, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := r.tmpl.ExecuteTemplate(&buf, entry.template, entry.data); err != nil {
				return err
			}
			outputs[i] = buf.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return template.HTML(strings.Join(outputs, "\n")), nil
}
