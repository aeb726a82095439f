// Package detection implements the per-class segmentation detectors of
// the engine: region extraction from binary masks, class-specific
// feature scoring, and the dispatcher that runs one or all detectors
// over a frame.
//
// # Pipeline
//
// Every detector follows the same shape:
//
//  1. Mask building: HSV band membership (or an edge/texture response
//     for urban expansion) produces a binary mask of candidate pixels.
//  2. Morphological cleanup: closing and/or opening where the class
//     calls for it.
//  3. Region extraction: 8-connected components of on pixels, each with
//     bounding box, pixel area, and box-center centroid.
//  4. Scoring: class-specific ratios measured inside the bounding box
//     drive a confidence value (0-100) and a severity bucket. Regions
//     below the class's area gate, or scoring below its confidence
//     floor, are silently discarded.
//
// Confidence and severity are deterministic functions of the measured
// ratios; running a detector twice over the same frame produces
// identical output.
//
// # Aggregate Confidence
//
// Each run also reports a single aggregate confidence for the whole
// frame, a saturating function of the detection count with per-class
// constants. The constants live in params.go so the per-class and
// general formulas cannot silently diverge.
//
// # Coordinate System
//
// Pixel coordinates, origin at the top-left corner, X rightward and Y
// downward. Bounding boxes are [x, y, width, height]; centers are the
// box center, not the mass centroid.
package detection
