package qrcode

import (
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
	"rsc.io/qr"

	"github.com/matzehuels/qrgrid/pkg/errors"
)

// Level is a QR error correction level.
type Level uint8

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15%
	LevelQ              // ~25%
	LevelH              // ~30%
)

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "?"
	}
}

// ParseLevel accepts a level letter or name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return LevelL, nil
	case "m", "medium", "":
		return LevelM, nil
	case "q", "quartile":
		return LevelQ, nil
	case "h", "high":
		return LevelH, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidLevel, "unknown error correction level %q (want L, M, Q or H)", s)
}

// Engine names the library that computes the matrix.
type Engine string

const (
	EngineRSC   Engine = "rsc"
	EngineSkip2 Engine = "skip2"
)

// Engines lists the supported engines.
var Engines = []Engine{EngineRSC, EngineSkip2}

// ParseEngine parses an engine name case-insensitively. Empty means
// EngineRSC.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EngineRSC, nil
	case EngineRSC, EngineSkip2:
		return e, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEngine, "unknown engine %q (want rsc or skip2)", s)
}

// EncodeOption configures Encode.
type EncodeOption func(*encoder)

type encoder struct {
	level  Level
	engine Engine
}

// WithLevel sets the error correction level. Default: LevelM.
func WithLevel(l Level) EncodeOption {
	return func(e *encoder) { e.level = l }
}

// WithEngine selects the encoding library. Default: EngineRSC.
func WithEngine(en Engine) EncodeOption {
	return func(e *encoder) { e.engine = en }
}

// Encode computes the QR matrix for content and wraps it in a QRCode with
// default styling.
func Encode(content string, opts ...EncodeOption) (QRCode, error) {
	src, err := EncodeSource(content, opts...)
	if err != nil {
		return QRCode{}, err
	}
	return FromSource(src)
}

// EncodeSource computes the QR matrix for content without converting it.
func EncodeSource(content string, opts ...EncodeOption) (Source, error) {
	if err := errors.ValidateContent(content); err != nil {
		return nil, err
	}
	e := encoder{level: LevelM, engine: EngineRSC}
	for _, opt := range opts {
		opt(&e)
	}

	switch e.engine {
	case EngineRSC:
		c, err := qr.Encode(content, rscLevel(e.level))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode with rsc")
		}
		return RSCSource(c), nil
	case EngineSkip2:
		q, err := goqrcode.New(content, skip2Level(e.level))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode with skip2")
		}
		q.DisableBorder = true
		return Skip2Source(q), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown engine %q", e.engine)
	}
}

func rscLevel(l Level) qr.Level {
	switch l {
	case LevelL:
		return qr.L
	case LevelQ:
		return qr.Q
	case LevelH:
		return qr.H
	default:
		return qr.M
	}
}

func skip2Level(l Level) goqrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return goqrcode.Low
	case LevelQ:
		return goqrcode.High
	case LevelH:
		return goqrcode.Highest
	default:
		return goqrcode.Medium
	}
}
