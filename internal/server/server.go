package server

import (
	"log"
	"net/http"
	"net/url"

	"Quanta/internal/calc"
	"Quanta/internal/calc/batch"
	"Quanta/internal/calc/report"
	"Quanta/internal/catalog"
	"Quanta/internal/config"
	"Quanta/internal/middleware"
	"Quanta/internal/share"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

const homeTitle = "Quantum Physics Calculators"

// Server serves the calculator pages and the JSON API. It keeps no state
// between requests beyond its configuration.
type Server struct {
	cfg    config.Config
	calcs  []calc.Calculator
	pages  *Pages
	signer *share.Signer
	logger *log.Logger
}

func New(cfg config.Config, logger *log.Logger) (*Server, error) {
	pages, err := LoadPages()
	if err != nil {
		return nil, err
	}
	var key []byte
	if cfg.ShareKey != "" {
		key, err = share.DeriveKey(cfg.ShareKey)
	} else {
		logger.Println("TOKEN_KEY is not set; share links will not survive a restart")
		key, err = share.RandomKey()
	}
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:    cfg,
		calcs:  catalog.All(),
		pages:  pages,
		signer: share.NewSigner(key, cfg.ShareTTL),
		logger: logger,
	}, nil
}

// Handler returns the routed application wrapped in request id and access logging.
func (s *Server) Handler() http.Handler {
	return middleware.RequestID(middleware.Logging(s.logger)(s.routes()))
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.HandleFunc("/", s.home).Methods("GET")
	for _, c := range s.calcs {
		r.HandleFunc(c.Path, s.calculatorPage(c)).Methods("GET", "POST")
	}
	r.HandleFunc("/share/{token}", s.shared).Methods("GET")

	limiter := middleware.NewIPRateLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst)

	reportH := &report.Handler{}
	reports := r.PathPrefix("/report").Subrouter()
	reports.Use(limiter.LimitMiddleware)
	reports.HandleFunc("/{slug}", reportH.Generate).Methods("POST")

	batchH := &batch.Handler{Limit: s.cfg.BatchLimit, MaxUploadBytes: s.cfg.MaxUploadBytes}
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS, limiter.LimitMiddleware)
	api.HandleFunc("/calculators", s.apiList).Methods("GET", "OPTIONS")
	api.HandleFunc("/calc/{slug}", s.apiCalc).Methods("POST", "OPTIONS")
	api.HandleFunc("/batch/{slug}", batchH.Calc).Methods("POST", "OPTIONS")
	api.HandleFunc("/import/{slug}", batchH.Import).Methods("POST", "OPTIONS")

	return r
}

func (s *Server) lookup(slug string) (calc.Calculator, bool) {
	for _, c := range s.calcs {
		if c.Slug == slug {
			return c, true
		}
	}
	return calc.Calculator{}, false
}

func (s *Server) page(title string, c *calc.Calculator) pageData {
	return pageData{
		Title:       title,
		Calculators: s.calcs,
		Calculator:  c,
		Inputs:      map[string]string{},
	}
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.pages.Render(w, "index", s.page(homeTitle, nil))
}

// calculatorPage shows the empty form on GET and the form plus its result on POST.
func (s *Server) calculatorPage(c calc.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := s.page(c.Title, &c)
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				data.Message = c.InvalidMessage()
			} else {
				s.evaluate(&data, c, r.PostForm)
			}
		}
		s.pages.Render(w, "calculator", data)
	}
}

func (s *Server) shared(w http.ResponseWriter, r *http.Request) {
	claims, err := s.signer.Verify(mux.Vars(r)["token"])
	if err != nil {
		http.Error(w, "Invalid or expired link", http.StatusNotFound)
		return
	}
	c, ok := s.lookup(claims.Calculator)
	if !ok {
		http.Error(w, "Invalid or expired link", http.StatusNotFound)
		return
	}
	src := url.Values{}
	for k, v := range claims.Inputs {
		src.Set(k, v)
	}
	data := s.page(c.Title, &c)
	s.evaluate(&data, c, src)
	s.pages.Render(w, "calculator", data)
}

func (s *Server) evaluate(data *pageData, c calc.Calculator, src url.Values) {
	data.Inputs = c.Inputs(src)
	out, err := c.Evaluate(src)
	if err != nil {
		data.Message = c.InvalidMessage()
		return
	}
	data.Outcome = &out

	token, err := s.signer.Sign(c.Slug, data.Inputs)
	if err != nil {
		s.logger.Printf("share link for %s: %v", c.Slug, err)
		return
	}
	data.ShareURL = "/share/" + token
}
