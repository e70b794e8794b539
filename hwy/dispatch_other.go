//go:build !amd64 && !arm64

package hwy

// Other architectures run the scalar paths.

func detectLevel() DispatchLevel {
	return DispatchScalar
}

func detectFeatures() Features {
	return ScalarFeatures
}
