package metrics

import (
	"sync/atomic"
)

type Metrics struct {
	requestsTotal        int64
	listFetchesJSON      int64
	listFetchesHTML      int64
	listFetchFails       int64
	wallpaperSearches    int64
	wallpaperSearchFails int64
}

var global = &Metrics{}

func IncrementRequests() {
	atomic.AddInt64(&global.requestsTotal, 1)
}

func IncrementListFetchJSON() {
	atomic.AddInt64(&global.listFetchesJSON, 1)
}

func IncrementListFetchHTML() {
	atomic.AddInt64(&global.listFetchesHTML, 1)
}

func IncrementListFetchFails() {
	atomic.AddInt64(&global.listFetchFails, 1)
}

func IncrementWallpaperSearches() {
	atomic.AddInt64(&global.wallpaperSearches, 1)
}

func IncrementWallpaperSearchFails() {
	atomic.AddInt64(&global.wallpaperSearchFails, 1)
}

func GetRequests() int64 {
	return atomic.LoadInt64(&global.requestsTotal)
}

func GetListFetchesJSON() int64 {
	return atomic.LoadInt64(&global.listFetchesJSON)
}

func GetListFetchesHTML() int64 {
	return atomic.LoadInt64(&global.listFetchesHTML)
}

func GetListFetchFails() int64 {
	return atomic.LoadInt64(&global.listFetchFails)
}

func GetWallpaperSearches() int64 {
	return atomic.LoadInt64(&global.wallpaperSearches)
}

func GetWallpaperSearchFails() int64 {
	return atomic.LoadInt64(&global.wallpaperSearchFails)
}

func Reset() {
	atomic.StoreInt64(&global.requestsTotal, 0)
	atomic.StoreInt64(&global.listFetchesJSON, 0)
	atomic.StoreInt64(&global.listFetchesHTML, 0)
	atomic.StoreInt64(&global.listFetchFails, 0)
	atomic.StoreInt64(&global.wallpaperSearches, 0)
	atomic.StoreInt64(&global.wallpaperSearchFails, 0)
}
