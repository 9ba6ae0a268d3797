// Package control frames the byte sequences of an integer stream.
//
// Each field starts with a control byte. A prefix code in its high bits
// gives the block type; the remaining low bits carry data or a size so that
// small values cost no extra bytes.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           | Capacity                        |
//  |---------------|---------------||----------------|---------------------------------|
//  | 1 |                           || Data           | 7 bits inline                   |
//  | 0 . 1 |                       || Data Size      | 1 to 64 bytes                   |
//  | 0 . 0 . 1 |                   || Data + 1       | 5 bits inline + 1 byte          |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits inline + 2 bytes         |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1 to 8 size bytes, then data    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | empty value                     |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | null value                      |
//  |---------------|---------------||----------------|---------------------------------|
//
// Sizes are stored minus one to extend their range by one: a Data Size
// block with low bits 000000 holds one byte of data.
//
// Data Size Size blocks store the number of size bytes (minus one) in the
// low three bits, followed by the big-endian data size (minus one) and the
// data itself.
//
// The encoder always picks the shortest block for the given data. Data
// whose first byte fits the inline bits of Data, Data + 1 or Data + 2 uses
// those blocks; everything else carries an explicit size.
package control
