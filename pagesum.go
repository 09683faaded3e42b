// Package pagesum fetches a single web page in a real browser, reduces it
// to plain text, and asks a chat-completion model to summarize it in the
// page's dominant language.
//
// This package contains domain types, interfaces and the pure text and URL
// helpers shared by every implementation. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/, openai/,
// goquery/).
package pagesum
