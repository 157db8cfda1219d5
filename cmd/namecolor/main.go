package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wbrown/namedcolor"
	"github.com/wbrown/namedcolor/env"
	"github.com/wbrown/namedcolor/imageutil"
	"github.com/wbrown/namedcolor/imageutil/cv"
	"github.com/wbrown/namedcolor/plot"
	"github.com/wbrown/namedcolor/server"
)

func main() {
	cfg := env.Load()

	paletteFile := flag.String("palette", cfg.Palette,
		"Palette name or path (embedded: "+strings.Join(namedcolor.Locales(), ", ")+
			", "+namedcolor.SVGPaletteName+"); overrides -locale")
	locale := flag.String("locale", cfg.Locale,
		"Language of the embedded palette")
	capacity := flag.Int("capacity", cfg.Capacity,
		"Points per bucket before it is split")
	rgb := flag.String("rgb", "",
		"Look up a color given as r,g,b")
	imagePath := flag.String("image", "",
		"Tally the named colors of an image")
	useCV := flag.Bool("cv", false,
		"Decode -image with OpenCV instead of the Go decoders")
	step := flag.Int("step", 4,
		"Sample every step-th pixel of -image")
	top := flag.Int("top", 10,
		"Number of names printed for -image")
	swatchFile := flag.String("swatch", "",
		"Write a PNG swatch of the last lookup")
	fontPath := flag.String("font", "",
		"TrueType font for -swatch (default: Go Regular)")
	plotPrefix := flag.String("plot", "",
		"Write bucket charts to <prefix>-population.png and <prefix>-volume.png")
	serve := flag.Bool("serve", false,
		"Serve lookups over HTTP on NAMEDCOLOR_PORT")
	stats := flag.Bool("stats", false,
		"Print bucket statistics")
	logLevel := flag.Int("loglevel", cfg.LogLevel,
		"Log level, 0 (fatal) to 4 (trace)")
	flag.Parse()

	cfg.Palette = *paletteFile
	cfg.Locale = *locale
	cfg.Capacity = *capacity
	cfg.LogLevel = *logLevel
	env.ConfigureLogger(cfg)

	beginInit := time.Now()
	points, err := cfg.LoadPalette()
	if err != nil {
		fmt.Printf("Error loading palette: %v\n", err)
		os.Exit(1)
	}
	table, err := namedcolor.New(points,
		namedcolor.WithCapacity(cfg.Capacity),
		namedcolor.WithLogger(log.Logger))
	if err != nil {
		fmt.Printf("Error building table: %v\n", err)
		os.Exit(1)
	}
	cached := namedcolor.NewCachedTable(table, cfg.CacheSize)
	log.Info().Str("context", "init").
		Int("points", table.Len()).
		Dur("elapsed", time.Since(beginInit)).
		Msg("table_ready")

	if *stats {
		s := table.Stats()
		fmt.Printf("points: %d\nbuckets: %d (%d empty)\nsplits: %d\noverflowed: %d\n"+
			"population: min %d, max %d, mean %.2f\n",
			s.Points, s.Buckets, s.EmptyBuckets, s.Splits, s.Overflowed,
			s.MinPopulation, s.MaxPopulation, s.MeanPopulation)
	}

	if *plotPrefix != "" {
		if err := plot.Save(table, *plotPrefix); err != nil {
			fmt.Printf("Error writing plots: %v\n", err)
			os.Exit(1)
		}
	}

	var queries []string
	if *rgb != "" {
		queries = append(queries, "rgb:"+*rgb)
	}
	queries = append(queries, flag.Args()...)

	var last *namedcolor.Match
	for _, q := range queries {
		m, err := lookup(cached, q)
		if err != nil {
			fmt.Printf("%s: %v\n", q, err)
			continue
		}
		fmt.Println(namedcolor.FormatMatch(m))
		last = &m
	}

	if *swatchFile != "" && last != nil {
		opts := imageutil.DefaultSwatchOptions()
		opts.FontPath = *fontPath
		img, err := imageutil.RenderSwatch(*last, opts)
		if err == nil {
			err = imageutil.SavePNG(img, *swatchFile)
		}
		if err != nil {
			fmt.Printf("Error writing swatch: %v\n", err)
			os.Exit(1)
		}
	}

	if *imagePath != "" {
		var counts []imageutil.NameCount
		if *useCV {
			counts, err = cv.ScanFile(*imagePath, cached, *step)
		} else {
			counts, err = imageutil.TallyFile(*imagePath, cached, *step)
		}
		if err != nil {
			fmt.Printf("Error processing image: %v\n", err)
			os.Exit(1)
		}
		for i, nc := range counts {
			if i >= *top {
				break
			}
			fmt.Printf("%s %5.1f%% %s\n", namedcolor.Swatch(nc.Color, 4), nc.Share*100, nc.Name())
		}
		hits, misses := cached.Counters()
		log.Debug().Str("context", "image").Int("hits", hits).Int("misses", misses).Msg("lookup_cache")
	}

	if *serve {
		srv := server.New(cached, log.Logger, nil)
		if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server_stopped")
		}
	}
}

// lookup resolves "rgb:r,g,b" or a hex code.
func lookup(t *namedcolor.CachedTable, query string) (namedcolor.Match, error) {
	if !strings.HasPrefix(query, "rgb:") {
		return t.LookupHex(query)
	}
	parts := strings.Split(strings.TrimPrefix(query, "rgb:"), ",")
	if len(parts) != 3 {
		return namedcolor.Match{}, fmt.Errorf("%w: want r,g,b", namedcolor.ErrMalformedChannel)
	}
	var channels [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return namedcolor.Match{}, fmt.Errorf("%w: %q is not a number", namedcolor.ErrMalformedChannel, p)
		}
		channels[i] = v
	}
	return t.LookupRGB(channels[0], channels[1], channels[2])
}
