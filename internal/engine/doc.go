// Package engine orchestrates one segmentation run: it loads the
// source frame, dispatches the requested detector pipeline, renders the
// annotated result image, and assembles the structured result the
// platform consumes.
//
// Each Run is synchronous, stateless, and one-shot: nothing carries
// over between invocations except the read-only image cache, and a
// failed run leaves nothing behind to retry. Errors follow a small
// taxonomy (InvalidInputError, ImageLoadError, UnsupportedClassError,
// OutputWriteError); callers at the process boundary convert any of
// them into the failure result shape with FailureResult.
package engine
