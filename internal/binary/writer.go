package binary

// Writer accumulates encoded values in memory. Writes cannot fail.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with room for capacity bytes.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteString appends the bytes of s.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteUint appends the low n bytes of v, 1 <= n <= 8.
func (w *Writer) WriteUint(v uint64, n int, endian Endianness) {
	var tmp [8]byte
	encode(tmp[:n], v, n, endian)
	w.buf = append(w.buf, tmp[:n]...)
}

// Write appends a value of type T in big-endian byte order.
func Write[T Unsigned](w *Writer, val T) {
	w.WriteUint(uint64(val), sizeOf[T](), BigEndian)
}

// WriteLE appends a value of type T in little-endian byte order.
func WriteLE[T Unsigned](w *Writer, val T) {
	w.WriteUint(uint64(val), sizeOf[T](), LittleEndian)
}
