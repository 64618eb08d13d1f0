package textfix

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OutputPrefix is prepended to the input path to name the output file.
const OutputPrefix = "processed_"

const tracerName = "github.com/louisbranch/fix-apostrophes/internal/textfix"

// Result describes one completed rewrite.
type Result struct {
	InputPath    string
	OutputPath   string
	Lines        int
	Replacements int
}

// OutputPath derives the output file name. The prefix is concatenated to the
// path as given, so "docs/a.txt" becomes "processed_docs/a.txt".
func OutputPath(inputPath string) string {
	return OutputPrefix + inputPath
}

// FixApostrophes rewrites inputPath and returns the output file name.
func FixApostrophes(ctx context.Context, inputPath string) (string, error) {
	res, err := FixFile(ctx, inputPath)
	if err != nil {
		return "", err
	}
	return res.OutputPath, nil
}

// FixFile loads inputPath, replaces every Marker and writes the result to
// OutputPath(inputPath), overwriting any existing file. Nothing is written if
// the input cannot be loaded.
func FixFile(ctx context.Context, inputPath string) (res Result, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "textfix.FixFile",
		trace.WithAttributes(attribute.String("textfix.input_path", inputPath)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	doc, err := Load(inputPath)
	if err != nil {
		return Result{}, err
	}
	fixed, n := doc.Fix()

	outputPath := OutputPath(inputPath)
	if err := Write(outputPath, fixed); err != nil {
		return Result{}, err
	}

	span.SetAttributes(
		attribute.String("textfix.output_path", outputPath),
		attribute.Int("textfix.lines", len(fixed.Lines)),
		attribute.Int("textfix.replacements", n),
	)
	return Result{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Lines:        len(fixed.Lines),
		Replacements: n,
	}, nil
}
