// Package policy decides whether an actor may attempt an action on a travel
// order. It answers role and ownership questions only; whether the order's
// current status permits a transition is decided by the lifecycle service.
package policy

import "github.com/voyago/travel-order-service/internal/app/entity"

type Action string

const (
	ActionView    Action = `view`
	ActionCreate  Action = `create`
	ActionApprove Action = `approve`
	ActionCancel  Action = `cancel`
)

type Reason string

const (
	ReasonAdmin         Reason = `admin`
	ReasonOwner         Reason = `owner`
	ReasonSelf          Reason = `self`
	ReasonNotOwner      Reason = `not_owner`
	ReasonAdminRequired Reason = `admin_required`
	ReasonNoIdentity    Reason = `no_identity`
	ReasonUnknownAction Reason = `unknown_action`
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow(reason Reason) Decision {
	return Decision{Allowed: true, Reason: reason}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Can evaluates the two-tier policy: admins bypass ownership for view and are
// the only role allowed to approve or cancel; owners may view and create their
// own orders. ownerID is the owner of the order being acted on; for create it
// is the actor itself.
func Can(actor entity.Actor, action Action, ownerID entity.UserID) Decision {
	if !actor.ID.Valid() {
		return deny(ReasonNoIdentity)
	}

	if actor.IsAdmin {
		return allow(ReasonAdmin)
	}

	switch action {
	case ActionView:
		if actor.ID == ownerID {
			return allow(ReasonOwner)
		}

		return deny(ReasonNotOwner)
	case ActionCreate:
		if actor.ID == ownerID {
			return allow(ReasonSelf)
		}

		return deny(ReasonNotOwner)
	case ActionApprove, ActionCancel:
		return deny(ReasonAdminRequired)
	}

	return deny(ReasonUnknownAction)
}
