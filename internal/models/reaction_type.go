package models

// ReactionType - закрытый набор из шести типов реакций
type ReactionType int

const (
	ReactionLike ReactionType = iota
	ReactionLove
	ReactionHaha
	ReactionWow
	ReactionSad
	ReactionAngry
)

// AllReactionTypes - фиксированный порядок типов, он же порядок при равных счетчиках
var AllReactionTypes = []ReactionType{
	ReactionLike,
	ReactionLove,
	ReactionHaha,
	ReactionWow,
	ReactionSad,
	ReactionAngry,
}

type reactionInfo struct {
	emoji string
	name  string
	color string
}

var reactionTable = map[ReactionType]reactionInfo{
	ReactionLike:  {emoji: "👍", name: "Like", color: "#1877F2"},
	ReactionLove:  {emoji: "❤️", name: "Love", color: "#E41E3F"},
	ReactionHaha:  {emoji: "😂", name: "Haha", color: "#FDD835"},
	ReactionWow:   {emoji: "😮", name: "Wow", color: "#FDD835"},
	ReactionSad:   {emoji: "😢", name: "Sad", color: "#FDD835"},
	ReactionAngry: {emoji: "😠", name: "Angry", color: "#E9710F"},
}

func (t ReactionType) Valid() bool {
	_, ok := reactionTable[t]
	return ok
}

func (t ReactionType) Emoji() string {
	if info, ok := reactionTable[t]; ok {
		return info.emoji
	}
	return reactionTable[ReactionLike].emoji
}

func (t ReactionType) DisplayName() string {
	if info, ok := reactionTable[t]; ok {
		return info.name
	}
	return reactionTable[ReactionLike].name
}

func (t ReactionType) Color() string {
	if info, ok := reactionTable[t]; ok {
		return info.color
	}
	return reactionTable[ReactionLike].color
}
