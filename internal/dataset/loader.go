package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DateLayout is the date format used by the source files and by the filter
// query parameters.
const DateLayout = "2006-01-02"

// Required source columns. hour.csv carries the daily schema plus "hr".
var (
	dayColumns  = []string{"dteday", "season", "weathersit", "weekday", "workingday", "temp", "atemp", "hum", "windspeed", "casual", "registered", "cnt"}
	hourColumns = append([]string{"hr"}, dayColumns...)
)

// Store loads the two source tables once and serves the in-memory copies for
// the rest of the session. Safe for concurrent use; the tables are read-only
// after load.
type Store struct {
	dayPath  string
	hourPath string
	logger   *slog.Logger

	once sync.Once
	day  DayTable
	hour HourTable
	err  error
}

// NewStore creates a store reading day and hour tables from the given paths.
func NewStore(dayPath, hourPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dayPath:  dayPath,
		hourPath: hourPath,
		logger:   logger.With(slog.String("component", "dataset_store")),
	}
}

// Load returns the daily and hourly tables, reading the source files on the
// first call only. A failed load is cached as well: the source files are
// static, so retrying cannot succeed without a restart.
func (s *Store) Load(ctx context.Context) (DayTable, HourTable, error) {
	s.once.Do(func() {
		s.day, s.hour, s.err = s.load(ctx)
	})
	return s.day, s.hour, s.err
}

func (s *Store) load(ctx context.Context) (DayTable, HourTable, error) {
	start := time.Now()
	s.logger.InfoContext(ctx, "loading datasets",
		slog.String("day_path", s.dayPath),
		slog.String("hour_path", s.hourPath))

	var (
		day  DayTable
		hour HourTable
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		day, err = LoadDayTable(s.dayPath)
		return err
	})
	g.Go(func() error {
		var err error
		hour, err = LoadHourTable(s.hourPath)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed", slog.String("error", err.Error()))
		return nil, nil, err
	}

	s.checkReferences(ctx, day, hour)

	s.logger.InfoContext(ctx, "datasets loaded",
		slog.Int("daily_rows", len(day)),
		slog.Int("hourly_rows", len(hour)),
		slog.String("duration", time.Since(start).String()))
	return day, hour, nil
}

// checkReferences logs hourly rows whose date has no daily row. The daily
// and hourly files come from the same export, so a dangling date is worth a
// notice but not a failure.
func (s *Store) checkReferences(ctx context.Context, day DayTable, hour HourTable) {
	dates := make(map[time.Time]bool, len(day))
	for _, r := range day {
		dates[r.Date] = true
	}
	dangling := 0
	for _, r := range hour {
		if !dates[r.Date] {
			dangling++
		}
	}
	if dangling > 0 {
		s.logger.DebugContext(ctx, "hourly rows reference dates absent from daily table",
			slog.Int("rows", dangling))
	}
}

// LoadDayTable reads and decodes the daily table from path.
func LoadDayTable(path string) (DayTable, error) {
	records, index, err := readTable(path, dayColumns)
	if err != nil {
		return nil, err
	}
	table := make(DayTable, 0, len(records))
	for i, fields := range records {
		r := row{path: path, line: i + 2, index: index, fields: fields}
		rec, err := r.dayRecord()
		if err != nil {
			return nil, err
		}
		table = append(table, rec)
	}
	return table, nil
}

// LoadHourTable reads and decodes the hourly table from path.
func LoadHourTable(path string) (HourTable, error) {
	records, index, err := readTable(path, hourColumns)
	if err != nil {
		return nil, err
	}
	table := make(HourTable, 0, len(records))
	for i, fields := range records {
		r := row{path: path, line: i + 2, index: index, fields: fields}
		day, err := r.dayRecord()
		if err != nil {
			return nil, err
		}
		hr, err := r.intField("hr")
		if err != nil {
			return nil, err
		}
		table = append(table, HourRecord{DayRecord: day, Hour: hr})
	}
	return table, nil
}

// readTable reads a delimited file, verifies the required header columns and
// returns the data rows with a column name to position index.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("read content: %w", err)}
	}

	// Strip UTF-8 BOM if present
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("read csv: %w", err)}
	}
	if len(records) == 0 {
		return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("file has no header row")}
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("missing required column %q", col)}
		}
	}
	return records[1:], index, nil
}

// row wraps one data line for typed field access with positional error
// reporting.
type row struct {
	path   string
	line   int
	index  map[string]int
	fields []string
}

func (r row) field(col string) string {
	return strings.TrimSpace(r.fields[r.index[col]])
}

func (r row) dateField(col string) (time.Time, error) {
	t, err := time.Parse(DateLayout, r.field(col))
	if err != nil {
		return time.Time{}, &ParseError{Path: r.path, Line: r.line, Column: col, Err: err}
	}
	return t, nil
}

func (r row) intField(col string) (int, error) {
	n, err := strconv.Atoi(r.field(col))
	if err != nil {
		return 0, &ParseError{Path: r.path, Line: r.line, Column: col, Err: err}
	}
	return n, nil
}

func (r row) floatField(col string) (float64, error) {
	f, err := strconv.ParseFloat(r.field(col), 64)
	if err != nil {
		return 0, &ParseError{Path: r.path, Line: r.line, Column: col, Err: err}
	}
	return f, nil
}

// dayRecord decodes the columns shared by both tables.
func (r row) dayRecord() (DayRecord, error) {
	var rec DayRecord
	var err error

	if rec.Date, err = r.dateField("dteday"); err != nil {
		return DayRecord{}, err
	}

	season, err := r.intField("season")
	if err != nil {
		return DayRecord{}, err
	}
	rec.Season = SeasonLabel(season)

	weather, err := r.intField("weathersit")
	if err != nil {
		return DayRecord{}, err
	}
	rec.Weather = WeatherLabel(weather)

	weekday, err := r.intField("weekday")
	if err != nil {
		return DayRecord{}, err
	}
	rec.Weekday = WeekdayLabel(weekday)

	working, err := r.intField("workingday")
	if err != nil {
		return DayRecord{}, err
	}
	rec.WorkingDay = working != 0

	if rec.Temp, err = r.floatField("temp"); err != nil {
		return DayRecord{}, err
	}
	if rec.ATemp, err = r.floatField("atemp"); err != nil {
		return DayRecord{}, err
	}
	if rec.Humidity, err = r.floatField("hum"); err != nil {
		return DayRecord{}, err
	}
	if rec.Windspeed, err = r.floatField("windspeed"); err != nil {
		return DayRecord{}, err
	}
	if rec.Casual, err = r.intField("casual"); err != nil {
		return DayRecord{}, err
	}
	if rec.Registered, err = r.intField("registered"); err != nil {
		return DayRecord{}, err
	}
	if rec.Count, err = r.intField("cnt"); err != nil {
		return DayRecord{}, err
	}
	return rec, nil
}
