package viewmodel

// Property names raised through change notifications.
const (
	PropID                           = "Id"
	PropName                         = "Name"
	PropDescription                  = "Description"
	PropAuthor                       = "Author"
	PropDisabled                     = "Disabled"
	PropEnabled                      = "Enabled"
	PropDisabledOpacity              = "DisabledOpacity"
	PropIsGlobal                     = "IsGlobal"
	PropIsGlobalAndEnabled           = "IsGlobalAndEnabled"
	PropWeightBoost                  = "WeightBoost"
	PropActionKeyword                = "ActionKeyword"
	PropAdditionalOptions            = "AdditionalOptions"
	PropShowAdditionalOptions        = "ShowAdditionalOptions"
	PropIconPath                     = "IconPath"
	PropShowNotAccessibleWarning     = "ShowNotAccessibleWarning"
	PropShowNotAllowedKeywordWarning = "ShowNotAllowedKeywordWarning"

	PropValue       = "Value"
	PropTextValue   = "TextValue"
	PropNumberValue = "NumberValue"
)
