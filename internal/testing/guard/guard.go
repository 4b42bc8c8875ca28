package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("CAMPO_TEST_MODE") == "" {
			_ = os.Setenv("CAMPO_TEST_MODE", "1")
		}
	})
}
