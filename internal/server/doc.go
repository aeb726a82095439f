// Package server exposes the segmentation engine over HTTP for
// long-lived deployments.
//
// POST /segment accepts the same parameter object as the CLI
// ({imagePath, outputDir, modelType}) and responds with the same result
// JSON. GET /healthz reports liveness. Every request runs an isolated
// engine invocation; the only shared state is the engine's read-only
// image cache.
package server
