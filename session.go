package asciiart

import (
	"fmt"
	"image"
)

// Defaults for a new Session.
const (
	DefaultOutputWidth = 200
	DefaultCacheSize   = 16 // Maximum number of cached frames
)

// Frame is the result of one render tick: the adjusted, downscaled preview
// image and the ASCII grid computed from it.
type Frame struct {
	Preview image.Image
	Grid    *Grid
}

// Session holds the interactive state: the loaded image, the current
// adjustment and the output settings. It is owned by a single caller and is
// not safe for concurrent use.
type Session struct {
	source    image.Image
	params    Params
	width     int
	maxWidth  int
	maxHeight int
	quantizer *Quantizer
	cache     *frameCache
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithOutputWidth sets the number of characters per row.
func WithOutputWidth(width int) SessionOption {
	return func(s *Session) {
		s.width = width
	}
}

// WithPreviewBounds sets the maximum preview image size.
func WithPreviewBounds(maxWidth, maxHeight int) SessionOption {
	return func(s *Session) {
		s.maxWidth = maxWidth
		s.maxHeight = maxHeight
	}
}

// WithRamp replaces the default character ramp.
func WithRamp(ramp Ramp) SessionOption {
	return func(s *Session) {
		s.quantizer.Ramp = ramp
	}
}

// WithParams sets the initial adjustment.
func WithParams(p Params) SessionOption {
	return func(s *Session) {
		s.params = p
	}
}

// WithCacheSize bounds the number of remembered frames. Zero disables caching.
func WithCacheSize(size int) SessionOption {
	return func(s *Session) {
		s.cache = newFrameCache(size)
	}
}

// NewSession creates an empty session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		params:    DefaultParams(),
		width:     DefaultOutputWidth,
		maxWidth:  DefaultPreviewWidth,
		maxHeight: DefaultPreviewHeight,
		quantizer: NewQuantizer(),
		cache:     newFrameCache(DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the source image.
func (s *Session) Load(img image.Image) error {
	if err := checkImage(img); err != nil {
		return err
	}
	s.source = toNRGBA(img)
	s.cache.clear()
	return nil
}

// Open loads the image at path.
func (s *Session) Open(path string) error {
	img, err := Load(path)
	if err != nil {
		return err
	}
	s.source = img
	s.cache.clear()
	return nil
}

// Loaded reports whether an image is loaded.
func (s *Session) Loaded() bool {
	return s.source != nil
}

// Source returns the loaded image, or nil.
func (s *Session) Source() image.Image {
	return s.source
}

// Params returns the current adjustment.
func (s *Session) Params() Params {
	return s.params
}

// OutputWidth returns the number of characters per row.
func (s *Session) OutputWidth() int {
	return s.width
}

// SetParams validates and stores p, then re-renders. An invalid p leaves the
// session unchanged.
func (s *Session) SetParams(p Params) (Frame, error) {
	if err := p.Validate(); err != nil {
		return Frame{}, err
	}
	s.params = p
	return Render(s)
}

// SetOutputWidth changes the row width, then re-renders.
func (s *Session) SetOutputWidth(width int) (Frame, error) {
	if width <= 0 {
		return Frame{}, fmt.Errorf("%w: output width must be positive, got %d", ErrInvalidParameter, width)
	}
	s.width = width
	return Render(s)
}

// Render computes the preview frame for the current state.
func (s *Session) Render() (Frame, error) {
	return Render(s)
}

// Render runs the preview path: adjust, downscale, quantize. Every call
// recomputes from the source image unless an identical frame is cached.
func Render(s *Session) (Frame, error) {
	if s.source == nil {
		return Frame{}, fmt.Errorf("%w: no image loaded", ErrInvalidImage)
	}

	key := frameKey{params: s.params, width: s.width}
	if frame, ok := s.cache.get(key); ok {
		return frame, nil
	}

	adjusted, err := Adjust(s.source, s.params)
	if err != nil {
		return Frame{}, err
	}
	preview, err := Downscale(adjusted, s.maxWidth, s.maxHeight)
	if err != nil {
		return Frame{}, err
	}
	grid, err := s.quantizer.Quantize(preview, s.width)
	if err != nil {
		return Frame{}, err
	}

	frame := Frame{Preview: preview, Grid: grid}
	s.cache.set(key, frame)
	return frame, nil
}

// Export quantizes the full resolution adjusted image, skipping the preview
// downscale.
func (s *Session) Export() (*Grid, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no image loaded", ErrInvalidImage)
	}
	adjusted, err := Adjust(s.source, s.params)
	if err != nil {
		return nil, err
	}
	return s.quantizer.Quantize(adjusted, s.width)
}

// SaveHTML exports the current image and writes it as an HTML page. It
// returns the path written.
func (s *Session) SaveHTML(path string) (string, error) {
	grid, err := s.Export()
	if err != nil {
		return "", err
	}
	return SaveHTML(path, grid.Text())
}

// Copy exports the current image and places the text on the clipboard.
func (s *Session) Copy() error {
	grid, err := s.Export()
	if err != nil {
		return err
	}
	return CopyToClipboard(grid.Text())
}

// frameKey identifies a render for caching.
type frameKey struct {
	params Params
	width  int
}

// frameCache is a small LRU of rendered frames.
type frameCache struct {
	frames      map[frameKey]Frame
	accessOrder []frameKey // most recently used first
	maxSize     int
}

func newFrameCache(size int) *frameCache {
	return &frameCache{
		frames:  make(map[frameKey]Frame),
		maxSize: size,
	}
}

func (c *frameCache) get(key frameKey) (Frame, bool) {
	frame, ok := c.frames[key]
	if ok {
		c.touch(key)
	}
	return frame, ok
}

func (c *frameCache) set(key frameKey, frame Frame) {
	if c.maxSize <= 0 {
		return
	}
	if _, ok := c.frames[key]; ok {
		c.frames[key] = frame
		c.touch(key)
		return
	}

	// Evict least recently used entries if at capacity
	for len(c.frames) >= c.maxSize {
		c.evictLRU()
	}
	c.frames[key] = frame
	c.accessOrder = append([]frameKey{key}, c.accessOrder...)
}

// touch moves key to the front of the access order.
func (c *frameCache) touch(key frameKey) {
	for i, k := range c.accessOrder {
		if k == key {
			c.accessOrder = append(c.accessOrder[:i], c.accessOrder[i+1:]...)
			break
		}
	}
	c.accessOrder = append([]frameKey{key}, c.accessOrder...)
}

func (c *frameCache) evictLRU() {
	if len(c.accessOrder) == 0 {
		return
	}
	lru := c.accessOrder[len(c.accessOrder)-1]
	c.accessOrder = c.accessOrder[:len(c.accessOrder)-1]
	delete(c.frames, lru)
}

func (c *frameCache) clear() {
	c.frames = make(map[frameKey]Frame)
	c.accessOrder = c.accessOrder[:0]
}

func (c *frameCache) len() int {
	return len(c.frames)
}
