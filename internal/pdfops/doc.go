// Package pdfops implements the document loader and merge assembler on top
// of pdfcpu. It is the only place page-level parsing and copying occurs.
//
// Inputs are treated as opaque page sequences: pages are counted at load
// time and copied verbatim, in order, at assembly time. No OCR, page
// manipulation, encryption, or format conversion happens here.
package pdfops
