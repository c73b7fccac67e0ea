package service

import (
	"cinex_api/configs"
	"cinex_api/internal/tmdb"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

type IMovieService interface {
	Trending(page int) (json.RawMessage, error)
	Popular(mediaType string, page int) (json.RawMessage, error)
	TopRated(mediaType string, page int) (json.RawMessage, error)
	NowPlaying(page int) (json.RawMessage, error)
	Search(query string, page int) (json.RawMessage, error)
	Detail(mediaType string, mediaId int64) (json.RawMessage, error)
	Genres(mediaType string) (json.RawMessage, error)
	Discover(mediaType string, page int) (json.RawMessage, error)
}

type MovieService struct {
	tmdbClient *tmdb.Client
}

func NewMovieService(tmdbClient *tmdb.Client) *MovieService {
	return &MovieService{
		tmdbClient: tmdbClient,
	}
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) Trending(page int) (json.RawMessage, error) {
	return s.fetchCached("/trending/all/week", pageQuery(page))
}

func (s *MovieService) Popular(mediaType string, page int) (json.RawMessage, error) {
	return s.fetchCached("/"+mediaType+"/popular", pageQuery(page))
}

func (s *MovieService) TopRated(mediaType string, page int) (json.RawMessage, error) {
	return s.fetchCached("/"+mediaType+"/top_rated", pageQuery(page))
}

func (s *MovieService) NowPlaying(page int) (json.RawMessage, error) {
	return s.fetchCached("/movie/now_playing", pageQuery(page))
}

func (s *MovieService) Search(query string, page int) (json.RawMessage, error) {
	q := pageQuery(page)
	q.Set("query", query)
	return s.fetchCached("/search/multi", q)
}

func (s *MovieService) Detail(mediaType string, mediaId int64) (json.RawMessage, error) {
	return s.fetchCached(fmt.Sprintf("/%s/%d", mediaType, mediaId), nil)
}

func (s *MovieService) Genres(mediaType string) (json.RawMessage, error) {
	return s.fetchCached("/genre/"+mediaType+"/list", nil)
}

func (s *MovieService) Discover(mediaType string, page int) (json.RawMessage, error) {
	return s.fetchCached("/discover/"+mediaType, pageQuery(page))
}

//------------------------------------------
//------------------------------------------

// fetchCached serves a catalog page from redis when possible and falls
// back to TMDB, caching the upstream body on the way out. Cache failures
// are not fatal to the request.
func (s *MovieService) fetchCached(path string, query url.Values) (json.RawMessage, error) {
	cacheKey := path
	if len(query) > 0 {
		cacheKey = path + "?" + query.Encode()
	}

	if cached, err := getCatalogCache(cacheKey); err == nil && cached != "" {
		return json.RawMessage(cached), nil
	}

	body, err := s.tmdbClient.Get(path, query)
	if err != nil {
		return nil, err
	}

	_ = setCatalogCache(cacheKey, string(body), configs.GetConfigs().TmdbCacheTtl)
	return body, nil
}

func pageQuery(page int) url.Values {
	if page <= 0 {
		page = 1
	}
	return url.Values{"page": []string{strconv.Itoa(page)}}
}
