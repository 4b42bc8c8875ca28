package testing

import (
	"os"
	"sync"
	stdtesting "testing"

	_ "github.com/campo-erp/campo-erp/internal/testing/guard"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("CAMPO_TEST_MODE", "1")
		if os.Getenv("GEOCODER_URL") == "" {
			_ = os.Setenv("GEOCODER_URL", "http://127.0.0.1:0")
		}
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
