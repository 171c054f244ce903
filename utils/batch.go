package utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/voxelsplace/kvx2vox/api"
)

// Manifest is a TOML batch description:
//
//	workers = 4
//	palette = true
//
//	[[job]]
//	source = "models/a.kvx"
//	target = "out/a.vox"
//	palette = false
type Manifest struct {
	Workers int   `toml:"workers"`
	Palette *bool `toml:"palette"`
	Jobs    []Job `toml:"job"`
}

// Job is one source/target pair. A nil Palette inherits the manifest's.
type Job struct {
	Source  string `toml:"source"`
	Target  string `toml:"target"`
	Palette *bool  `toml:"palette"`
}

// LoadManifest decodes a manifest and resolves job paths against its
// directory. Unknown keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("manifest %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("manifest %s: no jobs", path)
	}
	if m.Workers <= 0 {
		m.Workers = runtime.NumCPU()
	}
	base := filepath.Dir(path)
	targets := make(map[string]int, len(m.Jobs))
	for i := range m.Jobs {
		j := &m.Jobs[i]
		if j.Source == "" || j.Target == "" {
			return nil, fmt.Errorf("manifest %s: job %d needs source and target", path, i)
		}
		j.Source = resolve(base, j.Source)
		j.Target = resolve(base, j.Target)
		if prev, ok := targets[j.Target]; ok {
			return nil, fmt.Errorf("manifest %s: jobs %d and %d both write %s", path, prev, i, j.Target)
		}
		targets[j.Target] = i
	}
	return &m, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Options returns the conversion options of job i.
func (m *Manifest) Options(i int) api.Options {
	palette := true
	if m.Palette != nil {
		palette = *m.Palette
	}
	if p := m.Jobs[i].Palette; p != nil {
		palette = *p
	}
	return api.Options{Palette: palette}
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Jobs      int
	Converted int // distinct (source content, options) pairs
	Voxels    int // summed over jobs
}

type conversionKey struct {
	digest uint64
	opts   api.Options
}

// RunBatch converts every job of the manifest at manifestPath. Sources are
// read and hashed in parallel, each distinct source content is converted
// once per option set, then all targets are written. The first failure
// cancels the rest; targets already renamed into place stay.
func RunBatch(ctx context.Context, manifestPath string) (BatchResult, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return BatchResult{}, err
	}
	return runBatch(ctx, m)
}

func runBatch(ctx context.Context, m *Manifest) (BatchResult, error) {
	logger := log.FromContext(ctx)
	n := len(m.Jobs)
	sources := make([][]byte, n)
	keys := make([]conversionKey, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.Workers)
	for i := range m.Jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := os.ReadFile(m.Jobs[i].Source)
			if err != nil {
				return fmt.Errorf("job %d: read KVX: %w", i, err)
			}
			sources[i] = b
			keys[i] = conversionKey{digest: xxhash.Sum64(b), opts: m.Options(i)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	// first job index per distinct key, in job order for stable logs
	first := make(map[conversionKey]int)
	for i, k := range keys {
		if _, ok := first[k]; !ok {
			first[k] = i
		}
	}
	unique := make([]int, 0, len(first))
	for _, i := range first {
		unique = append(unique, i)
	}
	sort.Ints(unique)

	var mu sync.Mutex
	outputs := make(map[conversionKey][]byte, len(unique))
	stats := make(map[conversionKey]api.Stats, len(unique))

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(m.Workers)
	for _, i := range unique {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, st, err := api.KVXToVOX(sources[i], keys[i].opts)
			if err != nil {
				return fmt.Errorf("job %d (%s): %w", i, m.Jobs[i].Source, err)
			}
			mu.Lock()
			outputs[keys[i]] = out
			stats[keys[i]] = st
			mu.Unlock()
			logger.Debug("converted", "source", m.Jobs[i].Source, "voxels", st.Voxels, "digest", fmt.Sprintf("%016x", keys[i].digest))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(m.Workers)
	for i := range m.Jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := WriteFileAtomic(m.Jobs[i].Target, outputs[keys[i]], 0o644); err != nil {
				return fmt.Errorf("job %d: save VOX: %w", i, err)
			}
			if first[keys[i]] != i {
				logger.Debug("reused", "target", m.Jobs[i].Target, "from", m.Jobs[first[keys[i]]].Source)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{Jobs: n, Converted: len(unique)}
	for _, k := range keys {
		res.Voxels += stats[k].Voxels
	}
	return res, nil
}
