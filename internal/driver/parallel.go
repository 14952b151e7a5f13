package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/observ"
	"rill/internal/parser"
	"rill/internal/source"
)

// FileEvent informs the UI about per-file progress.
type FileEvent struct {
	Path      string
	Done      int
	Total     int
	FromCache bool
	Errors    int
}

// ParseDirOptions настраивают параллельный разбор директории.
type ParseDirOptions struct {
	MaxDiagnostics int
	Jobs           int
	Cache          *DiskCache       // nil — без кэша
	Events         chan<- FileEvent // закрывается внутри ParseDir
}

// ParseDirResult содержит результат разбора одного файла.
type ParseDirResult struct {
	Path      string
	FileID    source.FileID
	AST       *ast.File // nil при промахе загрузки или попадании в кэш
	Bag       *diag.Bag
	FromCache bool
}

// ParseDirOutcome агрегирует результаты разбора директории.
type ParseDirOutcome struct {
	FileSet  *source.FileSet
	Interner *source.Interner
	Results  []ParseDirResult
	Timer    *observ.Timer
}

// MergedBag сливает пофайловые диагностики в один Bag в порядке файлов;
// порядок детерминирован независимо от того, какая горутина закончила
// первой.
func (o *ParseDirOutcome) MergedBag() *diag.Bag {
	total := 0
	for _, r := range o.Results {
		total += r.Bag.Len()
	}
	merged := diag.NewBag(total + 1)
	for _, r := range o.Results {
		merged.Merge(r.Bag)
	}
	return merged
}

// listSourceFiles возвращает отсортированный список всех *.rl файлов.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir разбирает все *.rl файлы директории параллельно. Один общий
// потокобезопасный interner, по Bag на файл; ошибка загрузки файла —
// диагностика E005, не фатальный сбой. Файлы с неизменённым содержимым
// обслуживаются из кэша повтором их диагностик.
func ParseDir(ctx context.Context, dir string, opts ParseDirOptions) (*ParseDirOutcome, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}

	timer := observ.NewTimer()
	outcome := &ParseDirOutcome{
		FileSet:  source.NewFileSetWithBase(dir),
		Interner: source.NewInterner(),
		Timer:    timer,
	}

	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return outcome, nil
	}

	// Предзагрузка всех файлов; сбои запоминаются и становятся E005.
	loadPhase := timer.Begin("load")
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := outcome.FileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	timer.End(loadPhase, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}

	// Индексы результатов уникальны для каждой горутины, мьютекс не нужен.
	results := make([]ParseDirResult, len(files))
	var done atomic.Int64

	parsePhase := timer.Begin("parse")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = ParseDirResult{Path: path, Bag: bag}
				emitEvent(gctx, opts.Events, path, &done, len(files), false, bag)
				return nil
			}

			fileID := fileIDs[path]
			file := outcome.FileSet.Get(fileID)

			// Неизменённый файл обслуживается из кэша.
			if opts.Cache != nil {
				var payload DiskPayload
				if hit, cacheErr := opts.Cache.Get(file.Hash, &payload); cacheErr == nil && hit {
					replayDiagnostics(bag, payload.Diagnostics, fileID)
					results[i] = ParseDirResult{
						Path:      path,
						FileID:    fileID,
						Bag:       bag,
						FromCache: true,
					}
					emitEvent(gctx, opts.Events, path, &done, len(files), true, bag)
					return nil
				}
			}

			tree := parser.ParseFile(file, outcome.Interner, parser.Options{
				MaxErrors: maxErrors,
				Reporter:  diag.BagReporter{Bag: bag},
			})

			if opts.Cache != nil {
				payload := &DiskPayload{
					Schema:      diskCacheSchemaVersion,
					Path:        file.Path,
					Diagnostics: cacheDiagnostics(bag),
					Items:       len(tree.Items),
					Docstrings:  len(tree.Docstring),
				}
				// сбой записи кэша не влияет на результат разбора
				_ = opts.Cache.Put(file.Hash, payload)
			}

			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				AST:    tree,
				Bag:    bag,
			}
			emitEvent(gctx, opts.Events, path, &done, len(files), false, bag)
			return nil
		})
	}

	err = g.Wait()
	timer.End(parsePhase, "")
	outcome.Results = results
	if err != nil {
		return outcome, err
	}
	return outcome, nil
}

func emitEvent(ctx context.Context, events chan<- FileEvent, path string, done *atomic.Int64, total int, fromCache bool, bag *diag.Bag) {
	n := int(done.Add(1))
	if events == nil {
		return
	}
	ev := FileEvent{
		Path:      path,
		Done:      n,
		Total:     total,
		FromCache: fromCache,
		Errors:    bag.Len(),
	}
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}
