// Package bdgeo is an offline lookup library for the administrative
// geography of Bangladesh: divisions, districts, upazilas, unions and
// postcodes. The dataset is embedded in the binary and loaded once;
// all lookups are exact name (English or Bangla) or code matches
// against in-memory indexes.
//
// Lookups never fail with an error. A name that is not on record
// yields an unresolved handle whose Exists method reports false and
// whose accessors return zero values.
package bdgeo

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//go:embed bdgeo-data
var dataFiles embed.FS

// Data table file names, relative to the data directory.
const (
	divisionsFile = "divisions.json"
	districtsFile = "districts.json"
	upazilasFile  = "upazilas.json"
	unionsFile    = "unions.json"
	postcodesFile = "postcodes.json"

	embeddedDataDir = "bdgeo-data"
)

// sqMilesPerKm2 converts square kilometres to square miles.
const sqMilesPerKm2 = 0.386102

// DivisionRecord is the full on-record data for one division.
type DivisionRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	BnName         string   `json:"bn_name"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"long"`
	AreaKm2        float64  `json:"area_km2"`
	Population     int64    `json:"population"`
	PopulationYear int      `json:"population_year"`
	Headquarter    string   `json:"headquarter"`
	BnHeadquarter  string   `json:"bn_headquarter"`
	Districts      []string `json:"districts"`
	DistrictsCount int      `json:"districts_count"`
	Established    string   `json:"established"`
	Website        string   `json:"website"`
}

// DistrictRecord is the full on-record data for one district.
type DistrictRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	BnName         string   `json:"bn_name"`
	DivisionName   string   `json:"division_name"`
	BnDivisionName string   `json:"division_bn_name"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"long"`
	AreaKm2        float64  `json:"area_km2"`
	Population     int64    `json:"population"`
	PopulationYear int      `json:"population_year"`
	Headquarter    string   `json:"headquarter"`
	BnHeadquarter  string   `json:"bn_headquarter"`
	Upazilas       []string `json:"upazilas"`
	UpazilasCount  int      `json:"upazilas_count"`
	Established    string   `json:"established"`
	Website        string   `json:"website"`
}

// UpazilaRecord is the full on-record data for one upazila.
type UpazilaRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	BnName         string   `json:"bn_name"`
	DistrictName   string   `json:"district_name"`
	BnDistrictName string   `json:"district_bn_name"`
	DivisionName   string   `json:"division_name"`
	BnDivisionName string   `json:"division_bn_name"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"long"`
	AreaKm2        float64  `json:"area_km2"`
	Population     int64    `json:"population"`
	PopulationYear int      `json:"population_year"`
	Headquarter    string   `json:"headquarter"`
	Unions         []string `json:"unions"`
	UnionsCount    int      `json:"unions_count"`
}

// UnionRecord is the full on-record data for one union.
type UnionRecord struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BnName         string `json:"bn_name"`
	UpazilaName    string `json:"upazila_name"`
	BnUpazilaName  string `json:"upazila_bn_name"`
	DistrictName   string `json:"district_name"`
	BnDistrictName string `json:"district_bn_name"`
	DivisionName   string `json:"division_name"`
	BnDivisionName string `json:"division_bn_name"`
}

// PostcodeRecord is the full on-record data for one postcode.
type PostcodeRecord struct {
	Postcode       string `json:"postcode"`
	Name           string `json:"name"`
	BnName         string `json:"bn_name"`
	UpazilaName    string `json:"upazila_name"`
	BnUpazilaName  string `json:"upazila_bn_name"`
	DistrictName   string `json:"district_name"`
	BnDistrictName string `json:"district_bn_name"`
	DivisionName   string `json:"division_name"`
	BnDivisionName string `json:"division_bn_name"`
}

// nameIndex maps entity names to positions in a record table.
// English keys are lowercased, Bangla keys are exact. The first
// record claiming a name wins; later duplicates keep their table
// position but are not reachable by name.
type nameIndex struct {
	en map[string]int
	bn map[string]int
}

func newNameIndex(capacity int) nameIndex {
	return nameIndex{
		en: make(map[string]int, capacity),
		bn: make(map[string]int, capacity),
	}
}

func (ni nameIndex) add(enName, bnName string, pos int) {
	if key := strings.ToLower(strings.TrimSpace(enName)); key != "" {
		if _, ok := ni.en[key]; !ok {
			ni.en[key] = pos
		}
	}
	if key := strings.TrimSpace(bnName); key != "" {
		if _, ok := ni.bn[key]; !ok {
			ni.bn[key] = pos
		}
	}
}

// lookup resolves a name in either language. English names compare
// case-insensitively, Bangla names exactly, matching the published
// dataset semantics.
func (ni nameIndex) lookup(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	if pos, ok := ni.en[strings.ToLower(name)]; ok {
		return pos, true
	}
	if pos, ok := ni.bn[name]; ok {
		return pos, true
	}
	return 0, false
}

// Config contains configuration options for Dataset initialization.
type Config struct {
	DataDir string      // Directory with the JSON tables; "" uses the embedded copies
	Logger  *zap.Logger // Load-time logger; nil disables logging
}

// Option is a functional option for configuring a Dataset.
type Option func(*Config)

// WithDataDir loads the five JSON tables from dir instead of the
// embedded dataset.
func WithDataDir(dir string) Option {
	return func(c *Config) {
		c.DataDir = dir
	}
}

// WithLogger sets the logger used during dataset loading.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func defaultConfig() *Config {
	return &Config{}
}

// Dataset holds the loaded tables and their name indexes. It is
// read-only after New returns and safe for concurrent lookups.
type Dataset struct {
	divisions []DivisionRecord
	districts []DistrictRecord
	upazilas  []UpazilaRecord
	unions    []UnionRecord
	postcodes []PostcodeRecord

	divisionIdx nameIndex
	districtIdx nameIndex
	upazilaIdx  nameIndex
	unionIdx    nameIndex
	postcodeIdx map[string]int
}

// Singleton for the package-level constructors.
var (
	defaultDataset     *Dataset
	defaultDatasetOnce sync.Once
	defaultDatasetErr  error
)

// Default returns a shared Dataset backed by the embedded tables,
// loading it on first call.
func Default() (*Dataset, error) {
	defaultDatasetOnce.Do(func() {
		defaultDataset, defaultDatasetErr = New()
	})
	return defaultDataset, defaultDatasetErr
}

// New loads the dataset and builds the name indexes.
//
// Example:
//
//	d, err := bdgeo.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dhaka := d.Division("Dhaka")
//	fmt.Println(dhaka.Name(true), dhaka.Population())
func New(opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dataset{}

	var wrap divisionsDoc
	if err := loadTable(cfg.DataDir, divisionsFile, &wrap); err != nil {
		return nil, err
	}
	d.divisions = wrap.Divisions

	var distWrap districtsDoc
	if err := loadTable(cfg.DataDir, districtsFile, &distWrap); err != nil {
		return nil, err
	}
	d.districts = distWrap.Districts

	upazilas, err := loadUpazilas(cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}
	d.upazilas = upazilas

	var uniWrap unionsDoc
	if err := loadTable(cfg.DataDir, unionsFile, &uniWrap); err != nil {
		return nil, err
	}
	d.unions = uniWrap.Unions

	postcodes, err := loadPostcodes(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	d.postcodes = postcodes

	d.buildIndexes()

	logger.Info("dataset loaded",
		zap.Int("divisions", len(d.divisions)),
		zap.Int("districts", len(d.districts)),
		zap.Int("upazilas", len(d.upazilas)),
		zap.Int("unions", len(d.unions)),
		zap.Int("postcodes", len(d.postcodes)))
	return d, nil
}

type divisionsDoc struct {
	Divisions []DivisionRecord `json:"divisions"`
}

type districtsDoc struct {
	Districts []DistrictRecord `json:"districts"`
}

type unionsDoc struct {
	Unions []UnionRecord `json:"unions"`
}

// readDataFile returns the raw bytes of one table, from disk when a
// data directory is configured, otherwise from the embedded copy.
func readDataFile(dataDir, name string) ([]byte, error) {
	if dataDir != "" {
		b, err := os.ReadFile(filepath.Join(dataDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading data file %s: %w", name, err)
		}
		return b, nil
	}
	b, err := fs.ReadFile(dataFiles, embeddedDataDir+"/"+name)
	if err != nil {
		return nil, fmt.Errorf("reading embedded data file %s: %w", name, err)
	}
	return b, nil
}

func loadTable(dataDir, name string, v any) error {
	b, err := readDataFile(dataDir, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// loadUpazilas parses the upazila table. The published dataset mixes
// plain records with nested arrays of records, so each element is
// decoded as either and the result flattened into one slice.
func loadUpazilas(dataDir string, logger *zap.Logger) ([]UpazilaRecord, error) {
	var doc struct {
		Upazilas []json.RawMessage `json:"upazilas"`
	}
	if err := loadTable(dataDir, upazilasFile, &doc); err != nil {
		return nil, err
	}

	var out []UpazilaRecord
	for i, raw := range doc.Upazilas {
		var rec UpazilaRecord
		if err := json.Unmarshal(raw, &rec); err == nil {
			out = append(out, rec)
			continue
		}
		var group []UpazilaRecord
		if err := json.Unmarshal(raw, &group); err != nil {
			return nil, fmt.Errorf("parsing %s entry %d: %w", upazilasFile, i, err)
		}
		logger.Debug("flattened nested upazila group",
			zap.Int("entry", i), zap.Int("size", len(group)))
		out = append(out, group...)
	}
	return out, nil
}

// loadPostcodes accepts both the wrapped {"postcodes": [...]} form
// and a bare top-level array, like the published dataset.
func loadPostcodes(dataDir string) ([]PostcodeRecord, error) {
	b, err := readDataFile(dataDir, postcodesFile)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Postcodes []PostcodeRecord `json:"postcodes"`
	}
	if err := json.Unmarshal(b, &doc); err == nil && doc.Postcodes != nil {
		return doc.Postcodes, nil
	}
	var list []PostcodeRecord
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", postcodesFile, err)
	}
	return list, nil
}

func (d *Dataset) buildIndexes() {
	d.divisionIdx = newNameIndex(len(d.divisions))
	for i, rec := range d.divisions {
		d.divisionIdx.add(rec.Name, rec.BnName, i)
	}

	d.districtIdx = newNameIndex(len(d.districts))
	for i, rec := range d.districts {
		d.districtIdx.add(rec.Name, rec.BnName, i)
	}

	d.upazilaIdx = newNameIndex(len(d.upazilas))
	for i, rec := range d.upazilas {
		d.upazilaIdx.add(rec.Name, rec.BnName, i)
	}

	d.unionIdx = newNameIndex(len(d.unions))
	for i, rec := range d.unions {
		d.unionIdx.add(rec.Name, rec.BnName, i)
	}

	d.postcodeIdx = make(map[string]int, len(d.postcodes))
	for i, rec := range d.postcodes {
		code := strings.TrimSpace(rec.Postcode)
		if code == "" {
			continue
		}
		if _, ok := d.postcodeIdx[code]; !ok {
			d.postcodeIdx[code] = i
		}
	}
}
