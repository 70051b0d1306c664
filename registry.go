package odbcfield

import (
	"sync"

	"github.com/odbcfield/odbcfield/internal/types"
)

// ColumnInfo is the driver-reported metadata of a result column or parameter,
// as returned by SQLDescribeCol / SQLDescribeParam.
type ColumnInfo struct {
	Name    string
	SQLType SQLType
	// Size is the column size: characters for character types, bytes for
	// binary types, precision for decimals. 0 means unknown or unbounded.
	Size int
	// DecimalDigits is the scale of decimal columns.
	DecimalDigits int
	Nullable      bool
}

// DescriptionFactory makes the description for one column.
type DescriptionFactory func(cfg *Config, col ColumnInfo) (Description, error)

// Registry selects descriptions for driver type codes. Fixed-width types map to
// shared stateless descriptions; character, binary and decimal types are sized
// from the column metadata and the Config. A Registry is safe for concurrent use.
type Registry struct {
	cfg       *Config
	mu        sync.RWMutex
	factories map[SQLType]DescriptionFactory
}

func fixed(d Description) DescriptionFactory {
	return func(*Config, ColumnInfo) (Description, error) {
		return d, nil
	}
}

// NewRegistry returns a registry with the built-in mappings. A nil cfg means DefaultConfig().
func NewRegistry(cfg *Config) *Registry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &Registry{
		cfg: cfg,
		factories: map[SQLType]DescriptionFactory{
			types.BigInt:        fixed(BigIntDescription{}),
			types.Integer:       fixed(IntegerDescription{}),
			types.SmallInt:      fixed(SmallIntDescription{}),
			types.TinyInt:       fixed(TinyIntDescription{}),
			types.Double:        fixed(DoubleDescription{}),
			types.Float:         fixed(DoubleDescription{}),
			types.Real:          fixed(RealDescription{}),
			types.Bit:           fixed(BooleanDescription{}),
			types.Boolean:       fixed(BooleanDescription{}),
			types.TypeDate:      fixed(DateDescription{}),
			types.Date:          fixed(DateDescription{}),
			types.TypeTime:      fixed(TimeDescription{}),
			types.Time:          fixed(TimeDescription{}),
			types.TypeTimestamp: fixed(TimestampDescription{}),
			types.Timestamp:     fixed(TimestampDescription{}),
			types.GUID:          fixed(GUIDDescription{}),
			types.Numeric:       makeDecimalDescription,
			types.Decimal:       makeDecimalDescription,
			types.Binary:        makeBinaryDescription,
			types.VarBinary:     makeBinaryDescription,
			types.LongVarBinary: makeBinaryDescription,
		},
	}
	for _, t := range []SQLType{types.Char, types.VarChar, types.LongVarChar, types.WChar, types.WVarChar, types.WLongVarChar} {
		r.factories[t] = makeCharacterDescription
	}
	return r
}

// Config returns the configuration the registry sizes descriptions with.
func (r *Registry) Config() *Config {
	return r.cfg
}

// Register maps t to factory, replacing any existing mapping.
func (r *Registry) Register(t SQLType, factory DescriptionFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[t] = factory
}

// Describe returns the description for col, or an error matching
// ErrUnsupportedType when the type code has no mapping.
func (r *Registry) Describe(col ColumnInfo) (Description, error) {
	r.mu.RLock()
	factory, ok := r.factories[col.SQLType]
	r.mu.RUnlock()
	if !ok {
		logger.Debugf("no description for column %q of type %v", col.Name, col.SQLType)
		return nil, &FieldError{
			Number:      ErrCodeUnsupportedType,
			Message:     errMsgUnsupportedType,
			MessageArgs: []interface{}{col.SQLType, col.Name},
		}
	}
	d, err := factory(r.cfg, col)
	if err != nil {
		return nil, err
	}
	logger.Tracef("column %q (%v, size %v, digits %v) uses %v", col.Name, col.SQLType, col.Size, col.DecimalDigits, d.Name())
	return d, nil
}

// DescribeAll describes every column, failing on the first unsupported one so
// no row data is touched for a statement that cannot be read completely.
func (r *Registry) DescribeAll(cols []ColumnInfo) ([]Description, error) {
	descriptions := make([]Description, len(cols))
	for i, col := range cols {
		d, err := r.Describe(col)
		if err != nil {
			return nil, err
		}
		descriptions[i] = d
	}
	return descriptions, nil
}

// DescribeParameter chooses a description for binding f when the statement
// offers no parameter metadata. Variable-length types are sized to fit f.
func (r *Registry) DescribeParameter(f Field) (Description, error) {
	switch f.Kind() {
	case KindNull:
		return StringDescription{MaxLength: 1}, nil
	case KindInteger:
		return BigIntDescription{}, nil
	case KindFloat:
		return DoubleDescription{}, nil
	case KindBoolean:
		return BooleanDescription{}, nil
	case KindDate:
		return DateDescription{}, nil
	case KindTime:
		return TimeDescription{}, nil
	case KindTimestamp:
		return TimestampDescription{}, nil
	case KindDecimal:
		v, _ := f.AsDecimal()
		// SQL_NUMERIC_STRUCT scales are never negative; 5e2 binds as 500.
		d, err := NewDecimalDescription(MaxDecimalPrecision, max(v.Scale, 0))
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindBinary:
		return BinaryDescription{MaxLength: max(f.payloadLen(), 1)}, nil
	case KindText:
		if r.cfg.PreferUnicode {
			s, _ := f.AsText()
			encoded, err := utf16Encoding().NewEncoder().Bytes([]byte(s))
			if err != nil {
				return nil, errTypeMismatch(UnicodeDescription{}, f)
			}
			return UnicodeDescription{MaxLength: max(len(encoded)/2, 1)}, nil
		}
		return StringDescription{MaxLength: max(f.payloadLen(), 1)}, nil
	}
	return nil, &FieldError{
		Number:      ErrCodeUnsupportedType,
		Message:     "no parameter description for %v fields",
		MessageArgs: []interface{}{f.Kind()},
	}
}

// characterLength applies the varchar limit policy to a declared length.
func characterLength(cfg *Config, declared int) int {
	if declared <= 0 {
		return cfg.VarcharMaxCharacterLimit
	}
	if cfg.LimitVarcharResultsToMax && declared > cfg.VarcharMaxCharacterLimit {
		return cfg.VarcharMaxCharacterLimit
	}
	return declared
}

func makeCharacterDescription(cfg *Config, col ColumnInfo) (Description, error) {
	length := characterLength(cfg, col.Size)
	if col.SQLType.IsWide() || cfg.PreferUnicode {
		return UnicodeDescription{MaxLength: length}, nil
	}
	return StringDescription{MaxLength: length}, nil
}

func makeBinaryDescription(cfg *Config, col ColumnInfo) (Description, error) {
	return BinaryDescription{MaxLength: characterLength(cfg, col.Size)}, nil
}

func makeDecimalDescription(cfg *Config, col ColumnInfo) (Description, error) {
	precision := int32(col.Size)
	if precision <= 0 {
		precision = MaxDecimalPrecision
	}
	if precision > MaxDecimalPrecision && cfg.LargeDecimalsAsText {
		logger.Debugf("column %q: decimal precision %v exceeds %v, binding as text", col.Name, precision, MaxDecimalPrecision)
		// sign, decimal point and digits
		return StringDescription{MaxLength: int(precision) + 2}, nil
	}
	d, err := NewDecimalDescription(precision, int32(col.DecimalDigits))
	if err != nil {
		return nil, &FieldError{
			Number:      ErrCodeUnsupportedType,
			Message:     errMsgUnsupportedType,
			MessageArgs: []interface{}{DecimalDescription{Precision: precision, Scale: int32(col.DecimalDigits)}.Name(), col.Name},
		}
	}
	return d, nil
}

var defaultRegistry = NewRegistry(nil)

// Describe returns the description for col using the default configuration.
func Describe(col ColumnInfo) (Description, error) {
	return defaultRegistry.Describe(col)
}
