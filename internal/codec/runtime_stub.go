//go:build !govips || !cgo

package codec

func Startup() error {
	return nil
}

func Shutdown() {}

func Backend() string {
	return "imaging"
}

func newCodec(opts Options) (Codec, error) {
	return stdCodec{jpegQuality: opts.JPEGQuality}, nil
}
