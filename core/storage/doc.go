// Package storage provides the S3/MinIO client used by the remote snapshot
// backend.
//
// The Client interface wraps the subset of minio-go operations the tracker
// needs (bucket checks, get/put/stat/list), so tests can substitute the
// testify mock in storage/mocks.
package storage
