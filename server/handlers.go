package server

import (
	"io"
	"net/http"
	"os/exec"
	"time"

	"govex/config"
	"govex/enums"
	"govex/models"
	"govex/platform"
	"govex/proxy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type extractRequest struct {
	URL string `json:"url" binding:"required"`
}

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "a video url is required")
		return
	}

	started := time.Now()
	result, err := s.manager.Extract(c.Request.Context(), req.URL)
	if err != nil {
		zap.S().Warnf("extraction failed for %s: %v", req.URL, err)
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	zap.S().Infof("extracted %q via %s in %s",
		result.VideoInfo.Title, result.Provider, time.Since(started).Round(time.Millisecond))
	respondJSON(c, http.StatusOK, result)
}

func (s *Server) handleStream(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		respondError(c, http.StatusBadRequest, "a video url is required")
		return
	}
	p := platform.Detect(url)
	attempt := models.NewExtractionAttempt(url, p, enums.ProviderKindLocal)
	s.engine.Compose(attempt)
	attempt.Timeout = config.Env.StreamTimeout

	stream, err := s.engine.Stream(c.Request.Context(), attempt)
	if err != nil {
		respondError(c, http.StatusBadGateway, err.Error())
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "video/mp4")
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// headers are gone; all we can do is cut the connection so
		// the client sees a broken transfer instead of a short file
		zap.S().Warnf("stream aborted for %s: %v", url, err)
	}
}

type healthResponse struct {
	Status         string               `json:"status"`
	YtdlpAvailable bool                 `json:"ytdlp_available"`
	Cookies        []*models.CookieInfo `json:"cookies"`
	Proxies        []proxy.Status       `json:"proxies"`
}

func (s *Server) handleHealth(c *gin.Context) {
	_, lookupErr := exec.LookPath(config.Env.YtdlpPath)

	platforms := []enums.Platform{
		enums.PlatformYouTube,
		enums.PlatformTikTok,
		enums.PlatformInstagram,
	}
	cookieInfos := make([]*models.CookieInfo, 0, len(platforms))
	for _, p := range platforms {
		cookieInfos = append(cookieInfos, s.cookieStore.Info(p))
	}

	respondJSON(c, http.StatusOK, &healthResponse{
		Status:         "ok",
		YtdlpAvailable: lookupErr == nil,
		Cookies:        cookieInfos,
		Proxies:        s.proxies.Snapshot(),
	})
}
