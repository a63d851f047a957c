// Package loader resolves icon-set documents from storage URLs (local paths,
// file://, mem://, http(s)://) into catalog sources. Downloaded documents are
// kept per URL so repeated catalog builds do not hit storage again.
package loader
