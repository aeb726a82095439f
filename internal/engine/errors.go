package engine

import "fmt"

// InvalidInputError reports unusable run parameters: missing required
// fields, malformed argument JSON, or a zero-sized raster.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// ImageLoadError reports a source image that could not be read or
// decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("could not load image %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// UnsupportedClassError reports a model type with no detector pipeline.
// Every known class is mapped and unknown names fall back to the
// general pipeline, so this is a defensive check that should never
// fire.
type UnsupportedClassError struct {
	Model string
}

func (e *UnsupportedClassError) Error() string {
	return fmt.Sprintf("no detector pipeline for model type %q", e.Model)
}

// OutputWriteError reports a result image that could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("could not write result image %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
