package htmlgen

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/htmlgen/config"
	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
)

// Fetcher loads a page and returns it as a queryable document. Selecting on
// the document never fails, it yields an empty selection.
type Fetcher interface {
	Fetch(ctx context.Context, targetURL string) (*goquery.Document, error)
}

type poolClient struct {
	agent  string
	client *http.Client
}

// clientPool hands out one client per concurrent fetch
type clientPool struct {
	clients chan *poolClient
}

func newClientPool(concurrency int, agent string, timeout time.Duration) *clientPool {
	clients := make(chan *poolClient, concurrency)
	for i := 0; i < concurrency; i++ {
		clients <- &poolClient{
			agent: agent,
			client: &http.Client{
				Timeout: timeout,
				Transport: &http.Transport{
					DialContext: (&net.Dialer{
						Timeout: 5 * time.Second,
					}).DialContext,
					TLSHandshakeTimeout: 5 * time.Second,
				},
			},
		}
	}
	return &clientPool{
		clients: clients,
	}
}

func (cp *clientPool) get(ctx context.Context) (*poolClient, error) {
	select {
	case pc := <-cp.clients:
		return pc, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (cp *clientPool) put(pc *poolClient) {
	cp.clients <- pc
}

func (pc *poolClient) do(ctx context.Context, targetURL string) (*http.Response, error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if errRequest != nil {
		return nil, &FetchError{URL: targetURL, Err: errRequest}
	}
	req.Header.Set("User-Agent", pc.agent)
	resp, errGet := pc.client.Do(req)
	if errGet != nil {
		return nil, &FetchError{URL: targetURL, Err: errGet}
	}
	return resp, nil
}

func (pc *poolClient) fetch(ctx context.Context, targetURL string) (*goquery.Document, error) {
	resp, errDo := pc.do(ctx, targetURL)
	if errDo != nil {
		return nil, errDo
	}
	if resp.Body == nil {
		return nil, &FetchError{URL: targetURL, StatusCode: resp.StatusCode, Err: ErrNoBody}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: targetURL, StatusCode: resp.StatusCode}
	}
	doc, errNewDoc := goquery.NewDocumentFromReader(resp.Body)
	if errNewDoc != nil {
		return nil, &FetchError{URL: targetURL, Err: errNewDoc}
	}
	doc.Url = resp.Request.URL
	return doc, nil
}

// HTTPFetcher fetches pages over http with a bounded set of clients and
// honours robots.txt unless told otherwise.
type HTTPFetcher struct {
	pool         *clientPool
	ignoreRobots bool
	logger       *zap.Logger

	robotsLock sync.Mutex
	robots     map[string]*robotstxt.Group
}

func NewHTTPFetcher(conf *config.Config, logger *zap.Logger) *HTTPFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPFetcher{
		pool:         newClientPool(conf.Concurrency, conf.Agent, conf.Timeout),
		ignoreRobots: conf.IgnoreRobots,
		logger:       logger,
		robots:       map[string]*robotstxt.Group{},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL string) (*goquery.Document, error) {
	u, errParse := url.Parse(targetURL)
	if errParse != nil {
		return nil, &FetchError{URL: targetURL, Err: errParse}
	}
	pc, errGet := f.pool.get(ctx)
	if errGet != nil {
		return nil, &FetchError{URL: targetURL, Err: errGet}
	}
	defer f.pool.put(pc)

	if !f.ignoreRobots {
		group, errRobots := f.robotsGroup(ctx, pc, u)
		if errRobots != nil {
			return nil, errRobots
		}
		if !group.Test(u.Path) {
			return nil, &FetchError{URL: targetURL, Err: ErrRobotsDisallowed}
		}
	}

	start := time.Now()
	doc, errFetch := pc.fetch(ctx, targetURL)
	if errFetch != nil {
		return nil, errFetch
	}
	f.logger.Debug("fetched", zap.String("url", targetURL), zap.Duration("duration", time.Since(start)))
	return doc, nil
}

func (f *HTTPFetcher) robotsGroup(ctx context.Context, pc *poolClient, u *url.URL) (*robotstxt.Group, error) {
	baseURL := u.Scheme + "://" + u.Host
	f.robotsLock.Lock()
	defer f.robotsLock.Unlock()
	if group, ok := f.robots[baseURL]; ok {
		return group, nil
	}
	data, errRobots := getRobotsData(ctx, pc, baseURL)
	if errRobots != nil {
		return nil, errRobots
	}
	group := data.FindGroup(pc.agent)
	f.robots[baseURL] = group
	return group, nil
}

func getRobotsData(ctx context.Context, pc *poolClient, baseURL string) (data *robotstxt.RobotsData, err error) {
	robotsURL := baseURL + "/robots.txt"
	resp, errGet := pc.do(ctx, robotsURL)
	if errGet != nil {
		return nil, errGet
	}
	defer resp.Body.Close()
	data, errFromResponse := robotstxt.FromResponse(resp)
	if errFromResponse != nil {
		return nil, &FetchError{URL: robotsURL, StatusCode: resp.StatusCode, Err: errFromResponse}
	}
	return data, nil
}
