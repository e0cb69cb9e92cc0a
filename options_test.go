package stage1json

import "testing"

func TestWithBackendDefaultsToAuto(t *testing.T) {
	cfg, err := newConfig(nil)
	if err != nil {
		t.Fatalf("newConfig: %v", err)
	}
	if cfg.backend != BackendAuto {
		t.Errorf("backend = %v, want BackendAuto", cfg.backend)
	}
}

func TestWithBackendOverride(t *testing.T) {
	cfg, err := newConfig([]Option{WithBackend(BackendGPU)})
	if err != nil {
		t.Fatalf("newConfig: %v", err)
	}
	if cfg.backend != BackendGPU {
		t.Errorf("backend = %v, want BackendGPU", cfg.backend)
	}
}

func TestNewContextAutoUsesCPU(t *testing.T) {
	c, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	defer c.Close()
	if c.gpu != nil {
		t.Error("Auto backend should not initialize the GPU-style backend")
	}
}
