// Package chromium adapts a Chromium-family browser to the tabfind driven ports.
//
// Two channels are used:
//
//   - The remote debugging endpoint (start the browser with
//     --remote-debugging-port=9222). Its HTTP API lists and activates page
//     targets and opens new tabs; its websocket reports target lifecycle
//     events, from which the closed-tab journal is fed.
//   - The on-disk profile. Bookmarks are read from the profile's Bookmarks
//     JSON file and history from a snapshot of its History SQLite database.
//
// All DevTools requests share a token-bucket limiter so a burst of
// keystrokes cannot flood the browser.
package chromium
