package messaging

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// supported lists the catalog languages, the first one is the fallback
var supported = []language.Tag{
	language.Finnish,
	language.English,
}

// catalog holds every localized string of one language
type catalog struct {
	replies      map[Reply]string
	instructions map[Command]string
	help         string
	labels       RaidLabels
}

var catalogs = map[language.Tag]*catalog{
	language.Finnish: {
		replies: map[Reply]string{
			ReplyCreated:     "Ok!",
			ReplyEdited:      "Muokattu!",
			ReplyNotFound:    "En löytänyt raidia jota muokata :(",
			ReplyEditFailed:  "Pieleen meni, ehkä viesti oli jo poistettu? Tee uusi raidi.",
			ReplyMalformed:   "Jokin meni pieleen :(",
			ReplyUnavailable: "Raideja voi ilmoittaa vain raidikanavilla.",
		},
		instructions: map[Command]string{
			CommandRaid: "Jotain puuttui {prefix}raid komennostasi...\n```{original}```\n" +
				"Koita näin:```{prefix}raid AIKA BOSS PAIKKA\n{prefix}raid 12:00 mew Suvelan Tammi```\n" +
				"Yleisin syy komennon toimimattomuuteen on puuttuva kenttä.",
			CommandTime: "Aika komentosi oli väärin!\n```{original}```\n" +
				"Koita näin:\n```{prefix}aika AIKA PAIKKA```",
			CommandBoss: "Boss komentosi oli väärin!\n```{original}```\n" +
				"Koita näin:\n```{prefix}boss BOSS PAIKKA```",
		},
		help: "**Ilmoita uusi raidi**:\n" +
			"```{prefix}raid AIKA BOSSI PAIKKA\n" +
			"esim: {prefix}raid 12:00 Mewtwo Suvelan Tammi```\n" +
			"Ilmoittaudu raidiin:\n" +
			"```Klikkaa reaktioita +1, +2 tai +3, numero kertoo kuinka monta laitetta tai pelaajaa ilmoitat.\n" +
			"Etäreaktioilla +1, +2 ja +3 ilmoittaudut etäosallistujaksi.```\n" +
			"Korjaa/vaihda aika raidiin:\n" +
			"```{prefix}aika AIKA PAIKKA\n" +
			"esim: {prefix}aika 13:00 Suvelan Tammi```\n" +
			"Korjaa/vaihda bossi raidiin:\n" +
			"```{prefix}boss BOSS PAIKKA\n" +
			"esim: {prefix}boss Mew Suvelan Tammi```\n" +
			"Samat toiminnot löytyvät myös komennoilla /raid, /aika ja /boss.",
		labels: RaidLabels{
			Time:     "Aika",
			Boss:     "Boss",
			Location: "Paikka",
			Raiders:  "Ilmoittautuneet",
			NoSignup: "Ei ilmoittautuneita",
			Remote:   "(etä)",
			Footer:   "Kysy apua: {prefix}help",
		},
	},
	language.English: {
		replies: map[Reply]string{
			ReplyCreated:     "Ok!",
			ReplyEdited:      "Edited!",
			ReplyNotFound:    "Could not find a raid to edit :(",
			ReplyEditFailed:  "Something went wrong, maybe the message was already removed? Create a new raid.",
			ReplyMalformed:   "Something went wrong :(",
			ReplyUnavailable: "Raids can only be announced on raid channels.",
		},
		instructions: map[Command]string{
			CommandRaid: "Something was missing from your {prefix}raid command...\n```{original}```\n" +
				"Try this:```{prefix}raid TIME BOSS LOCATION\n{prefix}raid 12:00 mew Suvelan Tammi```\n" +
				"The most common problem with the command is a missing field.",
			CommandTime: "Your time command was wrong!\n```{original}```\n" +
				"Try this:\n```{prefix}aika TIME LOCATION```",
			CommandBoss: "Your boss command was wrong!\n```{original}```\n" +
				"Try this:\n```{prefix}boss BOSS LOCATION```",
		},
		help: "**Create a raid**:\n" +
			"```{prefix}raid TIME BOSS LOCATION\n" +
			"i.e. {prefix}raid 12:00 Mewtwo Suvelan Tammi```\n" +
			"Join a raid:\n" +
			"```Click on reactions +1, +2 or +3, the number indicates how many devices (or persons) you sign up for the raid.\n" +
			"The remote +1, +2 or +3 reactions sign you up remotely.```\n" +
			"Fix/change the time on a raid:\n" +
			"```{prefix}aika TIME LOCATION\n" +
			"i.e. {prefix}aika 13:00 Suvelan Tammi```\n" +
			"Fix/change the boss on a raid:\n" +
			"```{prefix}boss BOSS LOCATION\n" +
			"i.e. {prefix}boss Mew Suvelan Tammi```\n" +
			"The same actions are available as /raid, /aika and /boss.",
		labels: RaidLabels{
			Time:     "Time",
			Boss:     "Boss",
			Location: "Location",
			Raiders:  "Signed up",
			NoSignup: "Nobody yet",
			Remote:   "(remote)",
			Footer:   "Ask for help: {prefix}help",
		},
	},
}

// service implements the Service interface
type service struct {
	matcher  language.Matcher
	fallback language.Tag
	prefix   string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = "!"
	}

	s := &service{
		matcher:  language.NewMatcher(supported),
		fallback: supported[0],
		prefix:   prefix,
	}

	if config.DefaultLocale != "" {
		s.fallback = s.match(config.DefaultLocale)
	}

	return s, nil
}

// match picks the closest supported language, falling back when the
// locale cannot be parsed or matched
func (s *service) match(locale string) language.Tag {
	if locale == "" {
		return s.fallback
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return s.fallback
	}

	_, index, confidence := s.matcher.Match(tag)
	if confidence == language.No {
		return s.fallback
	}

	return supported[index]
}

func (s *service) catalog(locale string) *catalog {
	return catalogs[s.match(locale)]
}

func (s *service) expand(text, original string) string {
	return strings.NewReplacer(
		"{prefix}", s.prefix,
		"{original}", original,
	).Replace(text)
}

// GetReplyMessage returns the reply for a finished slash command
func (s *service) GetReplyMessage(ctx context.Context, input *GetReplyMessageInput) (*GetReplyMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	message, ok := s.catalog(input.Locale).replies[input.Reply]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReply, input.Reply)
	}

	return &GetReplyMessageOutput{
		Message: message,
	}, nil
}

// GetInstructionMessage returns instructions for a malformed text command
func (s *service) GetInstructionMessage(ctx context.Context, input *GetInstructionMessageInput) (*GetInstructionMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	template, ok := s.catalog(input.Locale).instructions[input.Command]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, input.Command)
	}

	// an empty code block renders badly in Discord
	original := input.Original
	if strings.TrimSpace(original) == "" {
		original = " "
	}

	return &GetInstructionMessageOutput{
		Message: s.expand(template, original),
	}, nil
}

// GetHelpMessage returns the help text
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetHelpMessageOutput{
		Message: s.expand(s.catalog(input.Locale).help, ""),
	}, nil
}

// GetRaidLabels returns the labels used when rendering a raid
func (s *service) GetRaidLabels(ctx context.Context, input *GetRaidLabelsInput) (*GetRaidLabelsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	labels := s.catalog(input.Locale).labels
	labels.Footer = s.expand(labels.Footer, "")

	return &GetRaidLabelsOutput{
		Labels: labels,
	}, nil
}
