package stix

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/zero-day-ai/stix/config"
	"github.com/zero-day-ai/stix/ioc"
	"github.com/zero-day-ai/stix/objects"
)

const instrumentationName = "github.com/zero-day-ai/stix"

// maxLineBytes caps a single IOC feed line in GenerateIndicators.
const maxLineBytes = 1024 * 1024

// Default names applied when a configuration record omits one.
const (
	defaultMalwareName     = "Unknown Malware"
	defaultThreatActorName = "Unknown Threat Actor"
	defaultCampaignName    = "Unknown Campaign"
)

// Generator owns one generation session: it builds STIX objects from raw
// inputs, infers the relationships between them and accumulates everything
// in input order until Bundle is called.
//
// A Generator is not safe for concurrent use; a session is a single
// sequential pass by design, so downstream consumers see a deterministic
// object order.
type Generator struct {
	identity      *objects.Identity
	logger        *slog.Logger
	tracer        trace.Tracer
	objects       []objects.Object
	relationships []*objects.Relationship

	generated metric.Int64Counter
	skipped   metric.Int64Counter
}

// NewGenerator creates a generation session.
//
// Example:
//
//	gen := stix.NewGenerator(
//	    stix.WithIdentityName("ACME CTI"),
//	    stix.WithLogger(logger),
//	)
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := &generatorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.identity == nil {
		cfg.identity = objects.NewIdentity(
			"STIX Generator",
			objects.IdentityClassSystem,
			"Automated STIX object generator",
		)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.tracer == nil {
		cfg.tracer = tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}
	if cfg.meterProvider == nil {
		cfg.meterProvider = metricnoop.NewMeterProvider()
	}

	meter := cfg.meterProvider.Meter(instrumentationName)
	generated, _ := meter.Int64Counter("stix.objects.generated",
		metric.WithDescription("STIX objects appended to the session"))
	skipped, _ := meter.Int64Counter("stix.inputs.skipped",
		metric.WithDescription("Inputs skipped as unrecognized or malformed"))

	return &Generator{
		identity:  cfg.identity,
		logger:    cfg.logger,
		tracer:    cfg.tracer,
		generated: generated,
		skipped:   skipped,
	}
}

// Identity returns the identity cited as the creator of every object this
// session generates.
func (g *Generator) Identity() *objects.Identity {
	return g.identity
}

// Objects returns the session's accumulated objects in generation order.
// Relationships are included: they are graph objects like any other.
func (g *Generator) Objects() []objects.Object {
	out := make([]objects.Object, len(g.objects))
	copy(out, g.objects)
	return out
}

// Relationships returns only the relationship edges generated so far, in
// generation order.
func (g *Generator) Relationships() []*objects.Relationship {
	out := make([]*objects.Relationship, len(g.relationships))
	copy(out, g.relationships)
	return out
}

// Bundle packages the session's objects into an exchange bundle. The bundle
// of an empty session has no objects; the validator reports that as an
// error rather than this method refusing to build it.
func (g *Generator) Bundle() *objects.Bundle {
	objs := make([]objects.Object, len(g.objects))
	copy(objs, g.objects)
	return objects.NewBundle(objs...)
}

// GenerateIndicator classifies a raw IOC string, synthesizes its STIX
// pattern and appends a fully populated indicator to the session. An input
// matching no recognized format returns ErrUnrecognizedIOC and produces no
// object. Out-of-range confidence and a validity window whose end does not
// fall after its start are configuration errors.
func (g *Generator) GenerateIndicator(ctx context.Context, value string, opts ...IndicatorOption) (*objects.Indicator, error) {
	const op = "Generator.GenerateIndicator"

	value = strings.TrimSpace(value)
	iocType := ioc.Detect(value)
	if iocType == ioc.TypeNone {
		return nil, classificationError(op, value)
	}

	cfg := defaultIndicatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.confidence < 0 || cfg.confidence > 100 {
		return nil, &Error{Op: op, Kind: KindConfiguration, Err: ErrInvalidConfig,
			Value: fmt.Sprintf("confidence %d", cfg.confidence)}
	}

	name := fmt.Sprintf("%s: %s", strings.ToUpper(iocType.String()), value)
	ind := objects.NewIndicator(name, ioc.Pattern(value, iocType), cfg.patternType, g.identity.ID)
	ind.Confidence = cfg.confidence
	ind.Description = cfg.description
	if ind.Description == "" {
		ind.Description = fmt.Sprintf("Indicator for %s %s", iocType, value)
	}
	if len(cfg.labels) > 0 {
		ind.Labels = cfg.labels
	}
	if cfg.validFrom != nil {
		ind.ValidFrom = *cfg.validFrom
	}
	ind.ValidUntil = cfg.validUntil
	if ind.ValidUntil != nil && !ind.ValidUntil.After(ind.ValidFrom) {
		return nil, &Error{Op: op, Kind: KindConfiguration, Err: ErrInvalidConfig,
			Value: fmt.Sprintf("valid_until %s not after valid_from %s",
				ind.ValidUntil.Format(time.RFC3339), ind.ValidFrom.Format(time.RFC3339))}
	}

	g.append(ctx, ind)
	return ind, nil
}

// GenerateIndicators reads IOCs line by line and generates an indicator per
// line. Blank lines and lines starting with "#" are ignored; unrecognized
// IOCs are skipped with a warning and never abort the batch. Input order is
// preserved in the session's object list.
func (g *Generator) GenerateIndicators(ctx context.Context, r io.Reader, opts ...IndicatorOption) ([]*objects.Indicator, error) {
	ctx, span := g.tracer.Start(ctx, "Generator.GenerateIndicators")
	defer span.End()

	var indicators []*objects.Indicator
	scanner := bufio.NewScanner(r)
	// Feed lines can exceed bufio's 64KiB default, long URLs especially.
	// Lines past this cap still abort the scan with bufio.ErrTooLong.
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return indicators, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ind, err := g.GenerateIndicator(ctx, line, opts...)
		if err != nil {
			if errors.Is(err, ErrUnrecognizedIOC) {
				g.logger.Warn("skipping unrecognized ioc", "value", line)
				g.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "unrecognized")))
				continue
			}
			// Anything else (e.g. out-of-range confidence) would fail
			// every remaining line too.
			return indicators, err
		}
		indicators = append(indicators, ind)
	}
	if err := scanner.Err(); err != nil {
		return indicators, fmt.Errorf("reading iocs: %w", err)
	}

	span.SetAttributes(attribute.Int("stix.indicators.generated", len(indicators)))
	return indicators, nil
}

// GenerateAttackPattern builds an attack pattern from a MITRE ATT&CK
// technique id, with a mitre-attack external reference pointing at the
// canonical technique page. A malformed id returns ErrInvalidTechniqueID
// and produces no object. Empty name and description get defaults derived
// from the technique id.
func (g *Generator) GenerateAttackPattern(ctx context.Context, techniqueID, name, description string) (*objects.AttackPattern, error) {
	const op = "Generator.GenerateAttackPattern"

	techniqueID = strings.TrimSpace(techniqueID)
	if !objects.ValidTechniqueID(techniqueID) {
		return nil, formatError(op, techniqueID)
	}

	if name == "" {
		name = fmt.Sprintf("MITRE ATT&CK Technique %s", techniqueID)
	}
	if description == "" {
		description = fmt.Sprintf("Attack pattern based on MITRE ATT&CK technique %s", techniqueID)
	}

	ap := objects.NewAttackPattern(techniqueID, name, description, g.identity.ID)
	g.append(ctx, ap)
	return ap, nil
}

// GenerateAttackPatterns builds one attack pattern per technique id in a
// comma-separated list, skipping malformed ids with a warning.
func (g *Generator) GenerateAttackPatterns(ctx context.Context, list string) []*objects.AttackPattern {
	var patterns []*objects.AttackPattern
	for _, id := range strings.Split(list, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ap, err := g.GenerateAttackPattern(ctx, id, "", "")
		if err != nil {
			g.logger.Warn("skipping invalid technique id", "technique_id", id)
			g.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "malformed")))
			continue
		}
		patterns = append(patterns, ap)
	}
	return patterns
}

// GenerateMalware builds a malware object from a configuration record,
// applying defaults for every omitted field, and appends it to the session.
func (g *Generator) GenerateMalware(ctx context.Context, cfg config.Malware) *objects.Malware {
	name := cfg.Name
	if name == "" {
		name = defaultMalwareName
	}

	m := objects.NewMalware(name, g.identity.ID)
	if len(cfg.MalwareTypes) > 0 {
		m.MalwareTypes = cfg.MalwareTypes
	}
	if cfg.IsFamily != nil {
		m.IsFamily = *cfg.IsFamily
	}
	m.Description = cfg.Description
	m.Capabilities = cfg.Capabilities
	m.Aliases = cfg.Aliases
	for _, phase := range cfg.KillChainPhases {
		m.KillChainPhases = append(m.KillChainPhases, objects.KillChainPhase{
			KillChainName: phase.KillChainName,
			PhaseName:     phase.PhaseName,
		})
	}

	g.append(ctx, m)
	return m
}

// GenerateThreatActor builds a threat actor from a configuration record and
// appends it to the session. Each observed TTP yields a derived attack
// pattern plus a "uses" relationship; malformed technique ids are skipped
// with a warning.
func (g *Generator) GenerateThreatActor(ctx context.Context, cfg config.ThreatActor) *objects.ThreatActor {
	name := cfg.Name
	if name == "" {
		name = defaultThreatActorName
	}

	actor := objects.NewThreatActor(name, g.identity.ID)
	if len(cfg.ThreatActorTypes) > 0 {
		actor.ThreatActorTypes = cfg.ThreatActorTypes
	}
	actor.Description = cfg.Description
	actor.Aliases = cfg.Aliases
	actor.Roles = cfg.Roles
	actor.Goals = cfg.Goals
	actor.Sophistication = cfg.Sophistication
	actor.ResourceLevel = cfg.ResourceLevel
	actor.PrimaryMotivation = cfg.PrimaryMotivation
	actor.SecondaryMotivations = cfg.SecondaryMotivations
	actor.PersonalMotivations = cfg.PersonalMotivations

	g.append(ctx, actor)

	for _, ttp := range cfg.ObservedTTPs {
		ap, err := g.GenerateAttackPattern(ctx, ttp, "", "")
		if err != nil {
			g.logger.Warn("skipping invalid technique id", "technique_id", ttp, "threat_actor", name)
			g.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "malformed")))
			continue
		}
		g.appendRelationship(ctx, objects.Uses(actor, ap, g.identity.ID))
	}

	return actor
}

// GenerateCampaign builds a campaign from a configuration record and
// appends it to the session. A nested threat actor yields an
// "attributed-to" relationship and each malware record a "uses"
// relationship; the nested objects are generated through their own
// generators and accumulate on the same session.
func (g *Generator) GenerateCampaign(ctx context.Context, cfg config.Campaign) *objects.Campaign {
	name := cfg.Name
	if name == "" {
		name = defaultCampaignName
	}

	campaign := objects.NewCampaign(name, g.identity.ID)
	campaign.Description = cfg.Description
	campaign.Aliases = cfg.Aliases
	campaign.Objective = cfg.Objective
	if cfg.FirstSeen != nil {
		t := cfg.FirstSeen.Time
		campaign.FirstSeen = &t
	}
	if cfg.LastSeen != nil {
		t := cfg.LastSeen.Time
		campaign.LastSeen = &t
	}

	g.append(ctx, campaign)

	if cfg.ThreatActor != nil {
		actor := g.GenerateThreatActor(ctx, *cfg.ThreatActor)
		g.appendRelationship(ctx, objects.AttributedTo(campaign, actor, g.identity.ID))
	}

	for _, malwareCfg := range cfg.Malware {
		m := g.GenerateMalware(ctx, malwareCfg)
		g.appendRelationship(ctx, objects.Uses(campaign, m, g.identity.ID))
	}

	return campaign
}

func (g *Generator) append(ctx context.Context, obj objects.Object) {
	g.objects = append(g.objects, obj)
	g.generated.Add(ctx, 1,
		metric.WithAttributes(attribute.String("type", obj.ObjectType())))
}

func (g *Generator) appendRelationship(ctx context.Context, rel *objects.Relationship) {
	g.relationships = append(g.relationships, rel)
	g.append(ctx, rel)
}
