package playlog

import (
	"DodgeBall3D/internal/logger"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

const (
	// DayLength is the fixed capacity of the day field in UTF-16 code units.
	DayLength = 40
	// RecordSize is the on-disk size of one record: the day field then a float32.
	RecordSize = DayLength*2 + 4

	DayLayout = "2006-01-02 15:04:05"
)

var (
	ErrNotInitialized = errors.New("play log not initialized")

	utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

type Record struct {
	Day  string
	Time float32
}

// Logger keeps play times sorted best first and writes them back once on
// Release.
type Logger struct {
	path        string
	maxRecords  int
	records     []Record
	initialized bool

	// Now stamps new records.
	Now func() time.Time
}

// Open loads path if it exists. maxRecords <= 0 keeps every record.
func Open(path string, maxRecords int) (*Logger, error) {
	l := &Logger{
		path:        path,
		maxRecords:  maxRecords,
		initialized: true,
		Now:         time.Now,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Info("No play log yet", zap.String("path", path))
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read play log %s: %w", path, err)
	}

	records, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode play log %s: %w", path, err)
	}
	if rest := len(data) % RecordSize; rest != 0 {
		logger.Log.Warn("Ignoring partial play log record",
			zap.String("path", path),
			zap.Int("bytes", rest))
	}
	l.records = records
	l.sortAndTrim()

	logger.Log.Info("Play log loaded",
		zap.String("path", path),
		zap.Int("records", len(l.records)))
	return l, nil
}

// Record stamps t with the current time and stores it.
func (l *Logger) Record(t float32) Record {
	rec := Record{Day: l.Now().Format(DayLayout), Time: t}
	l.Add(rec)
	return rec
}

func (l *Logger) Add(rec Record) {
	l.records = append(l.records, rec)
	l.sortAndTrim()
	logger.Log.Debug("Play time recorded",
		zap.String("day", rec.Day),
		zap.Float32("time", rec.Time))
}

// Records returns a copy of the records, best first.
func (l *Logger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Logger) Best() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[0], true
}

// Rank returns the 1-based position t would take among the stored records.
func (l *Logger) Rank(t float32) int {
	return sort.Search(len(l.records), func(i int) bool { return l.records[i].Time < t }) + 1
}

// Release writes the records to disk. Only the first call writes.
func (l *Logger) Release() error {
	if !l.initialized {
		return ErrNotInitialized
	}
	l.initialized = false

	l.sortAndTrim()
	var buf bytes.Buffer
	if err := Encode(&buf, l.records); err != nil {
		return fmt.Errorf("encode play log: %w", err)
	}
	if err := os.WriteFile(l.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write play log %s: %w", l.path, err)
	}
	logger.Log.Info("Play log saved",
		zap.String("path", l.path),
		zap.Int("records", len(l.records)))
	return nil
}

func (l *Logger) sortAndTrim() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Time > l.records[j].Time
	})
	if l.maxRecords > 0 && len(l.records) > l.maxRecords {
		l.records = l.records[:l.maxRecords]
	}
}

// Encode writes records in file order, no header.
func Encode(w io.Writer, records []Record) error {
	for _, rec := range records {
		var chunk [RecordSize]byte
		day, err := encodeDay(rec.Day)
		if err != nil {
			return err
		}
		copy(chunk[:DayLength*2], day)
		binary.LittleEndian.PutUint32(chunk[DayLength*2:], math.Float32bits(rec.Time))
		if _, err := w.Write(chunk[:]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads whole records until EOF. A trailing partial record is dropped.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	var chunk [RecordSize]byte
	for {
		_, err := io.ReadFull(r, chunk[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		day, err := decodeDay(chunk[:DayLength*2])
		if err != nil {
			return records, err
		}
		records = append(records, Record{
			Day:  day,
			Time: math.Float32frombits(binary.LittleEndian.Uint32(chunk[DayLength*2:])),
		})
	}
}

// encodeDay returns at most DayLength code units. A surrogate pair cut by the
// limit is dropped whole.
func encodeDay(day string) ([]byte, error) {
	b, err := utf16le.NewEncoder().Bytes([]byte(day))
	if err != nil {
		return nil, fmt.Errorf("encode day %q: %w", day, err)
	}
	if len(b) > DayLength*2 {
		b = b[:DayLength*2]
		last := binary.LittleEndian.Uint16(b[len(b)-2:])
		if last >= 0xD800 && last <= 0xDBFF {
			b = b[:len(b)-2]
		}
	}
	return b, nil
}

func decodeDay(field []byte) (string, error) {
	n := 0
	for n < len(field) && (field[n] != 0 || field[n+1] != 0) {
		n += 2
	}
	s, err := utf16le.NewDecoder().Bytes(field[:n])
	if err != nil {
		return "", fmt.Errorf("decode day: %w", err)
	}
	return string(s), nil
}
