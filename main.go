package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	lnet "LocalPaint/internal/net"
	"LocalPaint/internal/persist"
	"LocalPaint/internal/state"
	"LocalPaint/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	reset := flag.Bool("reset", false, "discard the saved canvas before starting")
	exportDir := flag.String("export", "", "write the saved canvas as PNG and PDF into this directory and exit")
	discover := flag.Bool("discover", false, "list painters accepting remote input on the LAN and exit")
	flag.Parse()

	if *discover {
		runDiscover()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	a := app.NewWithID(cfg.AppID)
	store := persist.New(a.Preferences(), cfg.StateKey, fyne.Do)
	if *reset {
		store.Clear()
		log.Println("[PERSIST] Saved canvas discarded.")
	}

	if *exportDir != "" {
		if err := runExport(cfg, store, *exportDir); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}
	runPainter(a, cfg, store)
}

func newSurface(cfg *config.Config) *state.Surface {
	// Validate already rejected unparseable backgrounds.
	bg, _ := state.ParseColor(cfg.Background)
	return state.NewSurface(cfg.Width, cfg.Height, bg)
}

func runPainter(a fyne.App, cfg *config.Config, store *persist.Store) {
	session := state.NewSession(newSurface(cfg), store)
	log.Printf("[SESSION] Starting session %s (%dx%d)", session.ID, cfg.Width, cfg.Height)

	paint := ui.NewPaintApp(a, session, cfg.ExportName)

	// The restore races with the first strokes; whichever lands later is
	// composited on top.
	a.Lifecycle().SetOnStarted(func() {
		session.Restore(store)
	})

	if cfg.Remote.Enabled {
		startRemote(a, cfg.Remote, paint)
	}
	paint.Run()
}

func startRemote(a fyne.App, rc config.RemoteConfig, paint *ui.PaintApp) {
	srv := lnet.NewInputServer(paint.Input, fyne.Do)
	go func() {
		if err := srv.ListenAndServe(rc.Port); err != nil {
			log.Printf("[REMOTE] %v", err)
			paint.SetStatus("Remote input unavailable")
		}
	}()

	url := lnet.InputURL(lnet.OutgoingIP(), rc.Port)
	log.Printf("[REMOTE] Connect input devices to %s", url)
	paint.SetStatus("Remote input at " + url)

	if !rc.Advertise {
		return
	}
	mdnsServer, err := lnet.Advertise(rc.Port)
	if err != nil {
		log.Printf("[REMOTE] mDNS advertise failed: %v", err)
		return
	}
	a.Lifecycle().SetOnStopped(func() {
		if err := mdnsServer.Shutdown(); err != nil {
			log.Printf("[REMOTE] mDNS shutdown: %v", err)
		}
	})
}

func runExport(cfg *config.Config, store *persist.Store, dir string) error {
	surface := newSurface(cfg)
	saved, err := store.Stored()
	if err != nil {
		return fmt.Errorf("read saved canvas: %w", err)
	}
	if saved != nil {
		surface.DrawImage(saved)
	}

	var img image.Image = surface.Snapshot()
	for _, name := range []string{cfg.ExportName, export.PDFName(cfg.ExportName)} {
		path, err := export.WriteFile(dir, name, img)
		if err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}

func runDiscover() {
	err := lnet.Browse(3*time.Second, func(url string) {
		fmt.Println(url)
	})
	if err != nil {
		log.Fatalf("Discovery failed: %v", err)
	}
}
