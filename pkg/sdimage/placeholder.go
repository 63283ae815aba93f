package sdimage

// PlaceholderBase64 is a 1x1 grey PNG used when UsePlaceholder is enabled,
// so non-production deployments never invoke the real synthesis backend.
const PlaceholderBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mN89+7dfwAJ5wPrYU1pygAAAABJRU5ErkJggg=="
