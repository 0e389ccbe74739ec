package messaging

import "io"

// progressReader reports fractional read progress, in [0, 1], of an
// upload body.
// Each pending attachment wraps its own reader, so concurrent uploads
// report independently.
type progressReader struct {
	inner    io.Reader
	total    int64
	read     int64
	progress func(fraction float64)
}

func newProgressReader(inner io.Reader, total int64, progress func(fraction float64)) *progressReader {
	return &progressReader{
		inner:    inner,
		total:    total,
		progress: progress,
	}
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 && r.total > 0 {
		r.read += int64(n)
		r.progress(float64(r.read) / float64(r.total))
	}
	return n, err
}
