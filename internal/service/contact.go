package service

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z0-9-]{2,}$`)
	idnaProfile  = idna.Lookup
)

const (
	defaultPhoneRegion = "US"
	mxLookupTimeout    = 3 * time.Second
)

// DNSResolver abstracts DNS lookups to simplify testing.
type DNSResolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// ContactNormalizer cleans contact form input: emails are lower-cased with an
// ASCII (IDNA) domain, phones are formatted as E.164.
type ContactNormalizer struct {
	DefaultRegion string
	dnsResolver   DNSResolver
}

// ContactNormalizerOption configures optional dependencies.
type ContactNormalizerOption func(*ContactNormalizer)

// WithMXLookup rejects emails whose domain has no MX record.
func WithMXLookup(resolver DNSResolver) ContactNormalizerOption {
	return func(n *ContactNormalizer) {
		n.dnsResolver = resolver
	}
}

// NewContactNormalizer builds a normalizer; region is the ISO country used
// for phone numbers written without an international prefix.
func NewContactNormalizer(region string, opts ...ContactNormalizerOption) *ContactNormalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	n := &ContactNormalizer{DefaultRegion: region}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SystemDNSResolver resolves MX records with the process resolver.
type SystemDNSResolver struct{}

func (SystemDNSResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return net.DefaultResolver.LookupMX(ctx, domain)
}

// NormalizeEmail returns the canonical form of raw or a validation error.
func (n *ContactNormalizer) NormalizeEmail(ctx context.Context, raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || !isDomainValid(domain) {
		return "", NewValidationError("email", "email")
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	if err != nil || asciiDomain == "" {
		return "", NewValidationError("email", "email")
	}
	email = local + "@" + asciiDomain
	if !emailPattern.MatchString(email) {
		return "", NewValidationError("email", "email")
	}
	if n.dnsResolver != nil && !n.hasMXRecord(ctx, asciiDomain) {
		return "", NewValidationError("email", "mx")
	}
	return email, nil
}

// NormalizePhone formats raw as E.164 using the default region for local numbers.
func (n *ContactNormalizer) NormalizePhone(raw string) (string, error) {
	normalized := normalizePhone(raw, n.DefaultRegion)
	if normalized == "" {
		return "", NewValidationError("phone", "e164")
	}
	return normalized, nil
}

func (n *ContactNormalizer) hasMXRecord(ctx context.Context, domain string) bool {
	ctx, cancel := context.WithTimeout(ctx, mxLookupTimeout)
	defer cancel()
	records, err := n.dnsResolver.LookupMX(ctx, domain)
	return err == nil && len(records) > 0
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

// ContactService stores and manages contact form submissions.
type ContactService struct {
	repo       repository.ContactMessagesRepository
	normalizer *ContactNormalizer
}

// NewContactService creates a ContactService.
func NewContactService(repo repository.ContactMessagesRepository, normalizer *ContactNormalizer) *ContactService {
	if normalizer == nil {
		normalizer = NewContactNormalizer(defaultPhoneRegion)
	}
	return &ContactService{repo: repo, normalizer: normalizer}
}

// Submit validates and stores a new, unread message.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	email, err := s.normalizer.NormalizeEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	var phone *string
	if raw := normalizeString(req.Phone); raw != nil {
		normalized, err := s.normalizer.NormalizePhone(*raw)
		if err != nil {
			return nil, err
		}
		phone = &normalized
	}

	msg := &entity.ContactMessage{
		Name:    req.Name,
		Email:   email,
		Company: normalizeString(req.Company),
		Phone:   phone,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns every message, newest first.
func (s *ContactService) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	return s.repo.Get(ctx, id)
}

// MarkRead toggles the read flag; no other field of a message can change.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID, req dto.ContactReadRequest) (*entity.ContactMessage, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return s.repo.MarkRead(ctx, id, *req.IsRead)
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
