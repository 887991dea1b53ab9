package service

import (
	"sort"

	"socialnet/internal/models"
)

type ReactionTypeCount struct {
	Type      models.ReactionType `json:"type"`
	TypeEmoji string              `json:"typeEmoji"`
	TypeName  string              `json:"typeName"`
	Count     int                 `json:"count"`
}

type ReactionSummary struct {
	TotalCount   int                 `json:"totalCount"`
	LikesCount   int                 `json:"likesCount"`
	LovesCount   int                 `json:"lovesCount"`
	HahaCount    int                 `json:"hahaCount"`
	WowCount     int                 `json:"wowCount"`
	SadCount     int                 `json:"sadCount"`
	AngryCount   int                 `json:"angryCount"`
	TopReactions []ReactionTypeCount `json:"topReactions"`
}

// SummarizeReactions сворачивает реакции в счетчики по шести типам и топ-3 для отображения.
// Алгоритм один и тот же для постов и комментариев, на входе только список типов.
func SummarizeReactions(types []models.ReactionType) ReactionSummary {
	counts := make(map[models.ReactionType]int, len(models.AllReactionTypes))
	for _, t := range types {
		counts[t]++
	}

	summary := ReactionSummary{
		TotalCount: len(types),
		LikesCount: counts[models.ReactionLike],
		LovesCount: counts[models.ReactionLove],
		HahaCount:  counts[models.ReactionHaha],
		WowCount:   counts[models.ReactionWow],
		SadCount:   counts[models.ReactionSad],
		AngryCount: counts[models.ReactionAngry],
	}

	// обходим типы в фиксированном порядке, чтобы при равных счетчиках
	// порядок был стабильным
	top := make([]ReactionTypeCount, 0, len(counts))
	for _, t := range models.AllReactionTypes {
		if counts[t] == 0 {
			continue
		}
		top = append(top, ReactionTypeCount{
			Type:      t,
			TypeEmoji: t.Emoji(),
			TypeName:  t.DisplayName(),
			Count:     counts[t],
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})

	if len(top) > 3 {
		top = top[:3]
	}

	summary.TopReactions = top
	return summary
}

func postReactionTypes(reactions []models.Reaction) []models.ReactionType {
	types := make([]models.ReactionType, 0, len(reactions))
	for _, r := range reactions {
		types = append(types, r.Type)
	}
	return types
}

func commentReactionTypes(reactions []models.CommentReaction) []models.ReactionType {
	types := make([]models.ReactionType, 0, len(reactions))
	for _, r := range reactions {
		types = append(types, r.Type)
	}
	return types
}
