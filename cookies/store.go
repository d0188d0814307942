package cookies

import (
	"os"
	"path/filepath"
	"strings"

	"govex/config"
	"govex/enums"
	"govex/models"

	"github.com/aki237/nscjar"
	"go.uber.org/zap"
)

// Store resolves filesystem paths to externally provisioned
// cookie-jar files. It never creates or writes cookie files, and
// existence is checked at call time so freshly uploaded jars are
// picked up without a restart.
type Store struct {
	dir      string
	fallback string
}

func NewStore(dir, fallback string) *Store {
	return &Store{
		dir:      dir,
		fallback: fallback,
	}
}

func NewStoreFromEnv() *Store {
	return NewStore(config.Env.CookiesDir, config.Env.GlobalCookies)
}

// Resolve returns the cookie file to use for the platform, or an
// empty string when none is available. Resolution order: per-platform
// env override, platform config, cookies-<platform>.txt, generic
// cookies.txt, global fallback.
func (s *Store) Resolve(p enums.Platform) string {
	candidates := []string{
		config.PlatformCookiesEnv(string(p)),
	}
	if cfg := config.GetPlatformConfig(p); cfg != nil && cfg.CookiesFile != "" {
		candidates = append(candidates, cfg.CookiesFile)
	}
	candidates = append(candidates,
		filepath.Join(s.dir, "cookies-"+string(p)+".txt"),
		filepath.Join(s.dir, "cookies.txt"),
		s.fallback,
	)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if isPlaceholderPath(candidate) {
			zap.S().Warnf("ignoring placeholder cookie path: %s", candidate)
			continue
		}
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// Info reports the resolved cookie file's state for the health
// surface. CookieCount is zero when the jar cannot be parsed.
func (s *Store) Info(p enums.Platform) *models.CookieInfo {
	info := &models.CookieInfo{Platform: p}
	path := s.Resolve(p)
	if path == "" {
		return info
	}
	info.FilePath = path
	stat, err := os.Stat(path)
	if err != nil {
		return info
	}
	info.Exists = true
	info.LastModified = stat.ModTime()
	info.CookieCount = countCookies(path)
	return info
}

func countCookies(path string) int {
	file, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()

	var parser nscjar.Parser
	parsed, err := parser.Unmarshal(file)
	if err != nil {
		zap.S().Debugf("failed to parse cookie jar %s: %v", path, err)
		return 0
	}
	return len(parsed)
}

func isPlaceholderPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "/path/to/") ||
		strings.Contains(lower, "placeholder")
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
