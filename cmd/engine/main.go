package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"shopscout-engine/internal/attr"
	"shopscout-engine/internal/config"
	"shopscout-engine/internal/events"
	"shopscout-engine/internal/httpapi"
	"shopscout-engine/internal/lexicon"
	"shopscout-engine/internal/pipeline"
	"shopscout-engine/internal/queryparse"
	"shopscout-engine/internal/rank"
	"shopscout-engine/internal/source/fsprovider"
	"shopscout-engine/internal/source/util"
)

const defaultPort = 38611

func main() {
	_ = godotenv.Load()

	// Engine data dir: env wins (a desktop shell can pass one), else local.
	dataDir := os.Getenv("SHOPSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Single instance per data dir; two engines would race the config
	// bootstrap and saves.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine already holds %s", lock.Path())
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		err = config.OverlayLexicons(&cfg, filepath.Join(dataDir, "lexicons.yml"))
		return cfg, err
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if normalized, res := config.NormalizeAndValidate(cfg); res.OK() {
		cfg = normalized
		for _, wmsg := range res.Warnings {
			log.Printf("level=warn msg=\"config\" warning=%q", wmsg)
		}
	} else {
		log.Fatalf("config invalid (%s): %v", userCfgPath, res.Errors)
	}
	cfgVal.Store(cfg)

	hub := events.NewHub()

	buildEngine := func(cfg config.Config) *pipeline.Engine {
		lex := lexicon.Merge(lexicon.Default(), cfg.Lexicons)
		ex := attr.New(lex)

		pagesDir := cfg.Search.PagesDir
		if pagesDir == "" {
			pagesDir = filepath.Join(dataDir, "pages")
		}

		return pipeline.New(pipeline.Options{
			Parser:        queryparse.New(lex),
			Extractor:     ex,
			Scorer:        rank.NewScorer(cfg.Scoring),
			Provider:      fsprovider.New(pagesDir),
			Limiter:       util.NewHostLimiter(cfg.Search.HostRatePerSec, cfg.Search.HostRateBurst),
			DefaultSites:  cfg.Search.DefaultSites,
			SourceTimeout: time.Duration(cfg.Search.SourceTimeoutSeconds) * time.Second,
		})
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		BuildEngine: buildEngine,
	})

	port := cfg.App.Port
	if p := os.Getenv("SHOPSCOUT_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	if port == 0 {
		port = defaultPort
	}

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Shutdown endpoint for the desktop shell; token printed on stdout.
	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)
	log.Printf("shutdown token: %s", token)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	case s := <-sig:
		log.Printf("signal %v, shutting down", s)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func shutdownHandler(token *string, srv *http.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(*token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Respond immediately, then shutdown asynchronously
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}
}
